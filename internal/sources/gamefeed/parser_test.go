package gamefeed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodePayloadShapes(t *testing.T) {
	t.Run("object with games list", func(t *testing.T) {
		entries, err := DecodePayload([]byte(`{"games":[{"gameid":"2025113001","gamestatus":"2ND"}]}`))
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "2025113001", string(entries[0].GameID))
	})

	t.Run("bare list", func(t *testing.T) {
		entries, err := DecodePayload([]byte(`[{"gameid":2025113001,"gamestatus":"FINAL"}]`))
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "2025113001", string(entries[0].GameID))
	})

	t.Run("empty games list", func(t *testing.T) {
		entries, err := DecodePayload([]byte(`{"games":[]}`))
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("object without games key", func(t *testing.T) {
		_, err := DecodePayload([]byte(`{"error":"try later"}`))
		require.ErrorIs(t, err, ErrUnrecognizedPayload)
	})

	t.Run("scalar", func(t *testing.T) {
		_, err := DecodePayload([]byte(`"maintenance"`))
		require.ErrorIs(t, err, ErrUnrecognizedPayload)
	})

	t.Run("empty body", func(t *testing.T) {
		_, err := DecodePayload(nil)
		require.ErrorIs(t, err, ErrUnrecognizedPayload)
	})

	t.Run("truncated json", func(t *testing.T) {
		_, err := DecodePayload([]byte(`{"games":[{`))
		require.ErrorIs(t, err, ErrUnrecognizedPayload)
	})
}

func TestScoreCoercion(t *testing.T) {
	tests := []struct {
		name     string
		payload  string
		expected *int
	}{
		{"numeric score", `{"gameid":"1","scorev":10}`, intp(10)},
		{"string score", `{"gameid":"1","scorev":"24"}`, intp(24)},
		{"zero is a real score", `{"gameid":"1","scorev":0}`, intp(0)},
		{"null means absent", `{"gameid":"1","scorev":null}`, nil},
		{"missing means absent", `{"gameid":"1"}`, nil},
		{"empty string means absent", `{"gameid":"1","scorev":""}`, nil},
		{"placeholder dash means absent", `{"gameid":"1","scorev":"--"}`, nil},
		{"junk text means absent", `{"gameid":"1","scorev":"PPD"}`, nil},
		{"negative rejected", `{"gameid":"1","scorev":-3}`, nil},
		{"float rejected", `{"gameid":"1","scorev":10.5}`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries, err := DecodePayload([]byte(`[` + tt.payload + `]`))
			require.NoError(t, err)
			require.Len(t, entries, 1)
			got := entries[0].ScoreV.Value
			if tt.expected == nil {
				assert.Nil(t, got)
			} else {
				require.NotNil(t, got)
				assert.Equal(t, *tt.expected, *got)
			}
		})
	}
}

func intp(v int) *int { return &v }

func TestFlexIDCanonicalization(t *testing.T) {
	entries, err := DecodePayload([]byte(`[
		{"gameid":2025113001},
		{"gameid":"2025113002"},
		{"gameid":null}
	]`))
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "2025113001", string(entries[0].GameID))
	assert.Equal(t, "2025113002", string(entries[1].GameID))
	assert.Equal(t, "", string(entries[2].GameID))
}

func TestToRecordDateDerivation(t *testing.T) {
	tests := []struct {
		name     string
		id       string
		expected string
	}{
		{"valid id renders weekday", "2025113001", "Sun 11/30"},
		{"saturday game", "2025112902", "Sat 11/29"},
		{"no leading zeros", "2026010301", "Sat 1/3"},
		{"unparseable prefix keeps raw 8 chars", "notadate99", "notadate"},
		{"short id kept whole", "bad", "bad"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := ToRecord(Entry{GameID: FlexID(tt.id)})
			assert.Equal(t, tt.expected, rec.Date)
			assert.Equal(t, tt.id, rec.ID)
		})
	}
}

func TestToRecordCarriesScoresAndStatus(t *testing.T) {
	entries, err := DecodePayload([]byte(`{"games":[
		{"gameid":"2025113001","gamestatus":"2ND","scorev":10,"scoreh":3,
		 "gameurl":"/games/2025/arizona-cardinals-vs-baltimore-ravens-2025113001"}
	]}`))
	require.NoError(t, err)
	require.Len(t, entries, 1)

	rec := ToRecord(entries[0])
	assert.Equal(t, "2025113001", rec.ID)
	assert.Equal(t, "2ND", rec.Status)
	assert.Equal(t, "Sun 11/30", rec.Date)
	require.NotNil(t, rec.AwayScore)
	require.NotNil(t, rec.HomeScore)
	assert.Equal(t, 10, *rec.AwayScore)
	assert.Equal(t, 3, *rec.HomeScore)
	assert.Equal(t, "Arizona Cardinals", rec.AwayTeam)
	assert.Equal(t, "Baltimore Ravens", rec.HomeTeam)
}

func TestTeamsFromGameURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
		away string
		home string
		ok   bool
	}{
		{
			name: "full slug",
			url:  "/games/2025/arizona-cardinals-vs-baltimore-ravens-2025113001",
			away: "Arizona Cardinals",
			home: "Baltimore Ravens",
			ok:   true,
		},
		{
			name: "html suffix and query stripped",
			url:  "https://www.footballdb.com/games/green-bay-packers-vs-chicago-bears-2025113002.html?tab=plays",
			away: "Green Bay Packers",
			home: "Chicago Bears",
			ok:   true,
		},
		{
			name: "no id suffix still usable",
			url:  "/games/arizona-cardinals-vs-baltimore-ravens",
			away: "Arizona Cardinals",
			home: "Baltimore Ravens",
			ok:   true,
		},
		{name: "empty url", url: "", ok: false},
		{name: "no join token", url: "/games/2025113001", ok: false},
		{name: "missing home side", url: "/games/cardinals-vs-", ok: false},
		{name: "only id after join token", url: "/games/cardinals-vs-2025113001", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			away, home, ok := TeamsFromGameURL(tt.url)
			require.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.away, away)
				assert.Equal(t, tt.home, home)
			}
		})
	}
}
