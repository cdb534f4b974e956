package core

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/delexi/ensime/internal/types"
)

func TestScopesForMatrix(t *testing.T) {
	cases := []struct {
		name        string
		buildSystem types.BuildSystem
		purpose     types.Purpose
		want        []string
	}{
		{"maven compile", types.BuildSystemMaven, types.PurposeCompile, []string{"compile", "provided", "system", "test"}},
		{"maven runtime", types.BuildSystemMaven, types.PurposeRuntime, []string{"compile", "provided", "system", "runtime"}},
		{"maven test", types.BuildSystemMaven, types.PurposeTest, []string{"compile", "provided", "system", "runtime", "test"}},
		{"sbt compile", types.BuildSystemSbt, types.PurposeCompile, []string{"compile", "default", "provided", "optional", "test"}},
		{"sbt runtime", types.BuildSystemSbt, types.PurposeRuntime, []string{"compile", "default", "provided", "optional", "runtime"}},
		{"sbt test", types.BuildSystemSbt, types.PurposeTest, []string{"compile", "default", "provided", "optional", "runtime", "test"}},
		{"ivy compile falls back to default", types.BuildSystemIvy, types.PurposeCompile, []string{"default"}},
		{"ivy runtime falls back to default", types.BuildSystemIvy, types.PurposeRuntime, []string{"default"}},
		{"ivy test falls back to default", types.BuildSystemIvy, types.PurposeTest, []string{"default"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ScopesFor(t.Context(), tc.buildSystem, tc.purpose)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("unexpected scopes (-want +got):\n%s", diff)
			}
		})
	}
}

func TestScopesForReturnsCopies(t *testing.T) {
	first := ScopesFor(t.Context(), types.BuildSystemMaven, types.PurposeCompile)
	first[0] = "mutated"
	second := ScopesFor(t.Context(), types.BuildSystemMaven, types.PurposeCompile)
	if diff := cmp.Diff("compile", second[0]); diff != "" {
		t.Fatalf("scope table must not be mutable through returned slices:\n%s", diff)
	}
}

func TestIvyOptionsScopeOverrides(t *testing.T) {
	opts := types.IvyOptions{RuntimeScope: "run"}
	if scope, ok := opts.ScopeFor(types.PurposeRuntime); !ok || scope != "run" {
		t.Fatalf("expected runtime override, got %q ok=%v", scope, ok)
	}
	if _, ok := opts.ScopeFor(types.PurposeCompile); ok {
		t.Fatal("compile purpose has no override and must fall back to default")
	}
}
