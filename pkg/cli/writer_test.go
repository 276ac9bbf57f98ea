package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testLookups = []LookupResult{
	{Word: "tinsel", Anagrams: []string{"listen", "silent"}},
	{Word: "dog", Anagrams: []string{}},
}

var testGroups = []Group{
	{Key: "act", Words: []string{"cat", "act"}},
	{Key: "eilnst", Words: []string{"listen", "silent"}},
}

func TestWriters(t *testing.T) {
	testCases := []struct {
		format  string
		lookups string
		groups  string
	}{
		{
			format:  "text",
			lookups: "tinsel: listen silent\ndog: \n",
			groups:  "cat act\nlisten silent\n",
		},
		{
			format:  "json",
			lookups: `[{"word":"tinsel","anagrams":["listen","silent"]},{"word":"dog","anagrams":[]}]` + "\n",
			groups:  `[{"key":"act","words":["cat","act"]},{"key":"eilnst","words":["listen","silent"]}]` + "\n",
		},
		{
			format:  "csv",
			lookups: "word,count,anagrams\ntinsel,2,listen silent\ndog,0,\n",
			groups:  "key,size,words\nact,2,cat act\neilnst,2,listen silent\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.format, func(t *testing.T) {
			var out bytes.Buffer
			stats := &Stats{}
			writer, err := NewWriter(tc.format, &out, stats)
			require.NoError(t, err)

			require.NoError(t, writer.WriteLookups(testLookups))
			assert.Equal(t, tc.lookups, out.String())
			assert.Equal(t, 2, stats.Output)

			out.Reset()
			require.NoError(t, writer.WriteGroups(testGroups))
			assert.Equal(t, tc.groups, out.String())
			assert.Equal(t, 4, stats.Output)
		})
	}
}

func TestUnknownFormat(t *testing.T) {
	_, err := NewWriter("xml", &bytes.Buffer{}, &Stats{})
	assert.ErrorContains(t, err, `unknown output format "xml"`)
}
