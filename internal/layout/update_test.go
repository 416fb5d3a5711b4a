package layout_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/EricaPomme/wowframeadj/internal/layout"
)

func Test_ParseOverrides_ReturnsCoercedValues_When_TokensValid(t *testing.T) {
	t.Parallel()

	overrides, err := layout.ParseOverrides([]string{
		"Frame=PlayerFrame",
		"X=100",
		"Y=-200.5",
		"Anchor=TOPRIGHT",
	})
	require.NoError(t, err)

	require.Equal(t, "PlayerFrame", overrides.Target)

	want := map[string]layout.Value{
		"X":      layout.IntValue(100),
		"Y":      layout.FloatValue(-200.5),
		"Anchor": layout.StringValue("TOPRIGHT"),
	}

	if diff := cmp.Diff(want, overrides.Attrs); diff != "" {
		t.Fatalf("overrides mismatch (-want +got):\n%s", diff)
	}
}

// Contract: allow-list matching is case-insensitive but the canonical
// casing is what gets written to the file.
func Test_ParseOverrides_NormalizesKeyCasing(t *testing.T) {
	t.Parallel()

	overrides, err := layout.ParseOverrides([]string{"frame=PlayerFrame", "framelevel=3", "x=1"})
	require.NoError(t, err)

	require.Equal(t, "PlayerFrame", overrides.Target)
	require.Contains(t, overrides.Attrs, "FrameLevel")
	require.Contains(t, overrides.Attrs, "X")
}

func Test_ParseOverrides_Fails_When_TokensInvalid(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		tokens  []string
		wantErr error
	}{
		{
			name:    "key outside allow-list",
			tokens:  []string{"Frame=PlayerFrame", "Alpha=0.5"},
			wantErr: layout.ErrInvalidKey,
		},
		{
			name:    "token without equals",
			tokens:  []string{"Frame=PlayerFrame", "X100"},
			wantErr: layout.ErrInvalidOverride,
		},
		{
			name:    "missing frame target",
			tokens:  []string{"X=100"},
			wantErr: layout.ErrFrameTargetRequired,
		},
		{
			name:    "empty frame target",
			tokens:  []string{"Frame="},
			wantErr: layout.ErrFrameTargetRequired,
		},
		{
			name:    "no tokens at all",
			tokens:  nil,
			wantErr: layout.ErrFrameTargetRequired,
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := layout.ParseOverrides(tc.tokens)
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

// Contract: only the named frame's listed fields change; every other
// frame and every untouched field stays byte-identical.
func Test_Apply_UpdatesOnlyMatchedFrame(t *testing.T) {
	t.Parallel()

	file, err := layout.Parse([]byte(sampleLayout))
	require.NoError(t, err)

	overrides, err := layout.ParseOverrides([]string{
		"Frame=PlayerFrame", "X=100", "Y=-200", "Anchor=TOPRIGHT",
	})
	require.NoError(t, err)

	require.NoError(t, file.Apply(overrides))

	want := strings.Join([]string{
		"LAYOUT-CACHE-VERSION-B",
		"Frame: PlayerFrame",
		"Anchor: TOPRIGHT",
		"FrameLevel: 1",
		"H: 100",
		"W: 200",
		"X: 100",
		"Y: -200",
		"Frame: TargetFrame",
		"Anchor: TOPLEFT",
		"FrameLevel: 1",
		"H: 100",
		"W: 200",
		"X: 300",
		"Y: -220",
		"",
	}, "\n")

	require.Equal(t, want, file.Marshal())
}

func Test_Apply_InsertsKey_When_Absent(t *testing.T) {
	t.Parallel()

	input := "LAYOUT-CACHE-VERSION-B\nFrame: ChatFrame1\nX: 10\n"

	file, err := layout.Parse([]byte(input))
	require.NoError(t, err)

	overrides, err := layout.ParseOverrides([]string{"Frame=ChatFrame1", "W=420"})
	require.NoError(t, err)

	require.NoError(t, file.Apply(overrides))

	require.Equal(t, "LAYOUT-CACHE-VERSION-B\nFrame: ChatFrame1\nW: 420\nX: 10\n", file.Marshal())
}

func Test_Apply_Fails_When_FrameMissing(t *testing.T) {
	t.Parallel()

	file, err := layout.Parse([]byte(sampleLayout))
	require.NoError(t, err)

	overrides, err := layout.ParseOverrides([]string{"Frame=NoSuchFrame", "X=1"})
	require.NoError(t, err)

	applyErr := file.Apply(overrides)
	require.ErrorIs(t, applyErr, layout.ErrFrameNotFound)

	// Nothing mutated: serialization is still the original text.
	require.Equal(t, sampleLayout, file.Marshal())
}

// Lookup is case-sensitive on the frame name.
func Test_Apply_MatchesFrameNameExactly(t *testing.T) {
	t.Parallel()

	file, err := layout.Parse([]byte(sampleLayout))
	require.NoError(t, err)

	overrides, err := layout.ParseOverrides([]string{"Frame=playerframe", "X=1"})
	require.NoError(t, err)

	require.ErrorIs(t, file.Apply(overrides), layout.ErrFrameNotFound)
}

// Duplicate frame names are malformed input; the documented policy is
// that only the first match is updated.
func Test_Apply_UpdatesFirstMatch_When_NamesDuplicated(t *testing.T) {
	t.Parallel()

	input := strings.Join([]string{
		"LAYOUT-CACHE-VERSION-B",
		"Frame: PlayerFrame",
		"X: 1",
		"Frame: PlayerFrame",
		"X: 2",
		"",
	}, "\n")

	file, err := layout.Parse([]byte(input))
	require.NoError(t, err)

	overrides, err := layout.ParseOverrides([]string{"Frame=PlayerFrame", "X=99"})
	require.NoError(t, err)

	require.NoError(t, file.Apply(overrides))

	want := strings.Join([]string{
		"LAYOUT-CACHE-VERSION-B",
		"Frame: PlayerFrame",
		"X: 99",
		"Frame: PlayerFrame",
		"X: 2",
		"",
	}, "\n")

	require.Equal(t, want, file.Marshal())
}

// Contract: applying the same overrides twice yields the same file as
// applying them once.
func Test_Apply_IsIdempotent(t *testing.T) {
	t.Parallel()

	overrides, err := layout.ParseOverrides([]string{
		"Frame=PlayerFrame", "X=100", "Y=-200", "Anchor=TOPRIGHT",
	})
	require.NoError(t, err)

	once, err := layout.Parse([]byte(sampleLayout))
	require.NoError(t, err)
	require.NoError(t, once.Apply(overrides))

	afterOnce := once.Marshal()

	twice, err := layout.Parse([]byte(afterOnce))
	require.NoError(t, err)
	require.NoError(t, twice.Apply(overrides))

	require.Equal(t, afterOnce, twice.Marshal())
}
