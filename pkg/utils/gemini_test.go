package utils

import "testing"

func TestCleanJSONResponse(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"{\"a\":1}", "{\"a\":1}"},
		{"```json\n{\"a\":1}\n```", "{\"a\":1}"},
		{"```\n{\"a\":1}\n```", "{\"a\":1}"},
		{"  \n{\"a\":1}\n  ", "{\"a\":1}"},
	}

	for _, tc := range cases {
		if got := CleanJSONResponse(tc.in); got != tc.want {
			t.Errorf("CleanJSONResponse(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
