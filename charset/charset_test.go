package charset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractLabel(t *testing.T) {
	cases := []struct {
		in       string
		wantVal  string
		wantOK   bool
		scenario string
	}{
		{"cHarSet=utf8", "utf8", true, "case-insensitive key, bare form"},
		{"charset utf8", "", false, "no '=' immediately after key"},
		{"text/html; charset=utf8", "utf8", true, "mimetype parameter form"},
		{`charset="utf-8"`, "utf-8", true, "quoted value"},
		{"charset=utf-8;boundary=1", "utf-8", true, "stops at ';'"},
		{"nothing here", "", false, "key absent entirely"},
	}
	for _, tc := range cases {
		got, ok := ExtractLabel(tc.in)
		assert.Equal(t, tc.wantOK, ok, tc.scenario)
		if tc.wantOK {
			assert.Equal(t, tc.wantVal, got, tc.scenario)
		}
	}
}
