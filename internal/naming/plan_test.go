package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/backmassage/nametag/internal/lexer"
)

func TestPlan(t *testing.T) {
	cases := []struct {
		name     string
		basename string
		edits    Edits
		want     string
	}{
		{
			name: "replace year", basename: "The.Matrix.1998.mkv",
			edits: Edits{YearSet: "1999"}, want: "The.Matrix.1999.mkv",
		},
		{
			name: "add missing year with dot", basename: "The.Matrix.mkv",
			edits: Edits{YearSet: "1999"}, want: "The.Matrix.1999.mkv",
		},
		{
			name: "add missing year with spaces", basename: "My Home Movie.mp4",
			edits: Edits{YearSet: "2004"}, want: "My Home Movie 2004.mp4",
		},
		{
			name: "set collapses extra years", basename: "Show.2010.Part.2012.mkv",
			edits: Edits{YearSet: "2011"}, want: "Show.2011.Part.mkv",
		},
		{
			name: "append after last year", basename: "Trip.2019.Photos.zip",
			edits: Edits{YearAppend: []string{"2020", "2021"}}, want: "Trip.2019.2020.2021.Photos.zip",
		},
		{
			name: "append with no year", basename: "Trip.zip",
			edits: Edits{YearAppend: []string{"2020"}}, want: "Trip.2020.zip",
		},
		{
			name: "replace label", basename: "Film.2001.SD.mkv",
			edits: Edits{LabelSet: "HD"}, want: "Film.2001.HD.mkv",
		},
		{
			name: "append label", basename: "Film.2001.HD.mkv",
			edits: Edits{LabelAppend: []string{"EXT"}}, want: "Film.2001.HD.EXT.mkv",
		},
		{
			name: "label inside word is replaced", basename: "theBBCnews.txt",
			edits: Edits{LabelSet: "ITV"}, want: "theITVnews.txt",
		},
		{
			name: "non-year digits untouched", basename: "Track.12345.flac",
			edits: Edits{YearSet: "1984"}, want: "Track.12345.1984.flac",
		},
		{
			name: "add date stamp", basename: "notes.txt",
			edits: Edits{Date: "2024-05-01"}, want: "2024-05-01.notes.txt",
		},
		{
			name: "replace date stamp keeps its delimiter", basename: "2023-01-09 notes.txt",
			edits: Edits{Date: "2024-05-01"}, want: "2024-05-01 notes.txt",
		},
		{
			name: "date stamp year is not the name year", basename: "2023-01-09.Film.1999.mkv",
			edits: Edits{YearSet: "2000"}, want: "2023-01-09.Film.2000.mkv",
		},
		{
			name: "existing stamp survives year append", basename: "2023-01-09.Film.mkv",
			edits: Edits{YearAppend: []string{"1999"}}, want: "2023-01-09.Film.1999.mkv",
		},
		{
			name: "stamp followed by text", basename: "2020-01-05_notes.txt",
			edits: Edits{Date: "2024-05-01"}, want: "2024-05-01_notes.txt",
		},
		{
			name: "stamp with no separator", basename: "2020-01-05notes.txt",
			edits: Edits{Date: "2024-05-01"}, want: "2024-05-01notes.txt",
		},
		{
			name: "year edit leaves stamp alone", basename: "2020-01-05_notes.txt",
			edits: Edits{YearSet: "1999"}, want: "2020-01-05_notes.1999.txt",
		},
		{
			name: "label right after stamp", basename: "2020-01-05AB.txt",
			edits: Edits{LabelSet: "AB"}, want: "2020-01-05AB.txt",
		},
		{
			name: "stamp only gains a label", basename: "2020-01-05.txt",
			edits: Edits{LabelAppend: []string{"HD"}}, want: "2020-01-05.HD.txt",
		},
		{
			name: "stamp with trailing delimiter", basename: "2020-01-05-.txt",
			edits: Edits{Date: "2024-05-01"}, want: "2024-05-01-.txt",
		},
		{
			name: "impossible date is not a stamp", basename: "2020-13-05.txt",
			edits: Edits{YearSet: "1999"}, want: "1999-13-05.txt",
		},
		{
			name: "no extension", basename: "notes",
			edits: Edits{LabelSet: "OLD"}, want: "notes.OLD",
		},
		{
			name: "all-caps stem is a label", basename: "README",
			edits: Edits{LabelSet: "OLD"}, want: "OLD",
		},
		{
			name: "dotfile", basename: ".profile",
			edits: Edits{YearSet: "2001"}, want: ".profile.2001",
		},
		{
			name: "already correct", basename: "Film.1999.HD.mkv",
			edits: Edits{YearSet: "1999", LabelSet: "HD"}, want: "Film.1999.HD.mkv",
		},
		{
			name: "everything", basename: "there2010.echoLABEL.txt",
			edits: Edits{YearSet: "2011", LabelSet: "NEW", Date: "2024-01-02"},
			want: "2024-01-02.there2011.echoNEW.txt",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Plan(tc.basename, tc.edits, lexer.DefaultCatalog())
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestPlan_ArgCatalogKeepsFlagsAsText(t *testing.T) {
	cat, err := lexer.DefaultCatalog().WithArgs("-y", "--year")
	require.NoError(t, err)

	got, err := Plan("clip-y.2010.mp4", Edits{YearSet: "2011"}, cat)
	require.NoError(t, err)
	assert.Equal(t, "clip-y.2011.mp4", got)
}

func TestPlanner_ReusedAcrossNames(t *testing.T) {
	p, err := NewPlanner(Edits{Date: "2024-05-01"}, lexer.DefaultCatalog())
	require.NoError(t, err)

	assert.Equal(t, "2024-05-01.notes.txt", p.Plan("notes.txt"))
	assert.Equal(t, "2024-05-01 notes.txt", p.Plan("2023-01-09 notes.txt"))
	assert.Equal(t, "2024-05-01.txt", p.Plan("2020-01-05.txt"))
}

func TestNewPlanner_RejectsInvalidEdits(t *testing.T) {
	_, err := NewPlanner(Edits{LabelSet: "hd"}, lexer.DefaultCatalog())
	assert.ErrorIs(t, err, ErrInvalidLabel)
}

func TestEdits_Validate(t *testing.T) {
	tests := []struct {
		name    string
		edits   Edits
		wantErr error
	}{
		{"empty", Edits{}, nil},
		{"good year", Edits{YearSet: "2010"}, nil},
		{"old year", Edits{YearSet: "1776"}, ErrInvalidYear},
		{"year with text", Edits{YearSet: "2010a"}, ErrInvalidYear},
		{"bad appended year", Edits{YearAppend: []string{"2010", "99"}}, ErrInvalidYear},
		{"empty appended year", Edits{YearAppend: []string{""}}, ErrInvalidYear},
		{"good label", Edits{LabelSet: "HD"}, nil},
		{"lowercase label", Edits{LabelSet: "hd"}, ErrInvalidLabel},
		{"single letter label", Edits{LabelAppend: []string{"X"}}, ErrInvalidLabel},
		{"label with delimiter", Edits{LabelSet: "A-B"}, ErrInvalidLabel},
		{"good date", Edits{Date: "2024-02-29"}, nil},
		{"bad date", Edits{Date: "2023-02-29"}, ErrInvalidDate},
		{"slashed date", Edits{Date: "2024/05/01"}, ErrInvalidDate},
		{"word date", Edits{Date: "yesterday"}, ErrInvalidDate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.edits.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)

			_, planErr := Plan("x.mkv", tt.edits, lexer.DefaultCatalog())
			assert.ErrorIs(t, planErr, tt.wantErr)
		})
	}
}

func TestTargetPath(t *testing.T) {
	assert.Equal(t, "/media/in/new.mkv", TargetPath("/media/in/old.mkv", "new.mkv"))
	assert.Equal(t, "new.mkv", TargetPath("old.mkv", "new.mkv"))
}

func TestCollisionResolver(t *testing.T) {
	cr := NewCollisionResolver()

	assert.Equal(t, "/d/Film.2001.mkv", cr.Resolve("/d/a.mkv", "/d/Film.2001.mkv"))
	assert.Equal(t, "/d/Film.2001.mkv", cr.Resolve("/d/a.mkv", "/d/Film.2001.mkv"), "same source keeps its target")
	assert.Equal(t, "/d/Film.2001.2.mkv", cr.Resolve("/d/b.mkv", "/d/Film.2001.mkv"))
	assert.Equal(t, "/d/Film.2001.3.mkv", cr.Resolve("/d/c.mkv", "/d/Film.2001.mkv"))
}

func TestCollisionResolver_ClaimedSources(t *testing.T) {
	cr := NewCollisionResolver()
	cr.Claim("/d/Film.2001.mkv")

	assert.Equal(t, "/d/Film.2001.mkv", cr.Resolve("/d/Film.2001.mkv", "/d/Film.2001.mkv"))
	assert.Equal(t, "/d/Film.2001.2.mkv", cr.Resolve("/d/other.mkv", "/d/Film.2001.mkv"))
}
