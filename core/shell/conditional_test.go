package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripConditional(t *testing.T) {
	cases := map[string]struct {
		tokens  []string
		last    Status
		want    []string
		wantMsg string
	}{
		"plain line": {
			tokens: []string{"ls"},
			last:   StatusUnknown,
			want:   []string{"ls"},
		},
		"then after success": {
			tokens: []string{"then", "echo", "ok"},
			last:   StatusSuccess,
			want:   []string{"echo", "ok"},
		},
		"else after failure": {
			tokens: []string{"else", "echo", "ok"},
			last:   StatusFailure,
			want:   []string{"echo", "ok"},
		},
		"only one keyword stripped": {
			tokens: []string{"then", "then", "ls"},
			last:   StatusSuccess,
			want:   []string{"then", "ls"},
		},
		"then first line": {
			tokens:  []string{"then", "ls"},
			last:    StatusUnknown,
			wantMsg: "Conditional used without a previous command",
		},
		"else first line": {
			tokens:  []string{"else", "ls"},
			last:    StatusUnknown,
			wantMsg: "Conditional used without a previous command",
		},
		"then after failure": {
			tokens:  []string{"then", "ls"},
			last:    StatusFailure,
			wantMsg: "Previous command failed",
		},
		"else after success": {
			tokens:  []string{"else", "ls"},
			last:    StatusSuccess,
			wantMsg: "Previous command succeeded",
		},
		"then alone": {
			tokens:  []string{"then"},
			last:    StatusSuccess,
			wantMsg: "Unexpected number of arguments",
		},
		"else alone after success checks status first": {
			tokens:  []string{"else"},
			last:    StatusSuccess,
			wantMsg: "Previous command succeeded",
		},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			got, err := StripConditional(tc.tokens, tc.last)
			if tc.wantMsg != "" {
				var shellErr *Error
				require.ErrorAs(t, err, &shellErr)
				assert.Equal(t, KindConditional, shellErr.Kind)
				assert.Equal(t, tc.wantMsg, shellErr.Msg)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
