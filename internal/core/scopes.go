package core

import (
	"context"
	"fmt"

	assert "github.com/ZanzyTHEbar/assert-lib"

	"github.com/delexi/ensime/internal/types"
)

// mavenScopes replays Maven's default classpath closures: which named
// configuration scopes satisfy each logical purpose.
var mavenScopes = map[types.Purpose][]string{
	types.PurposeCompile: {"compile", "provided", "system", "test"},
	types.PurposeRuntime: {"compile", "provided", "system", "runtime"},
	types.PurposeTest:    {"compile", "provided", "system", "runtime", "test"},
}

// sbtScopes replays sbt's configuration closures. Test configurations
// are folded into the compile purpose so that test sources stay
// analyzable alongside main sources.
var sbtScopes = map[types.Purpose][]string{
	types.PurposeCompile: {"compile", "default", "provided", "optional", "test"},
	types.PurposeRuntime: {"compile", "default", "provided", "optional", "runtime"},
	types.PurposeTest:    {"compile", "default", "provided", "optional", "runtime", "test"},
}

// ScopesFor maps a logical purpose to the ordered scope names the given
// build system uses to satisfy it. For Ivy the mapping is 1:1 with the
// caller-supplied scope when one was configured; without an override
// every purpose uses the single "default" configuration (the override
// lookup lives with the Ivy strategy, this returns the fallback).
//
// A purpose outside {compile, runtime, test} is a programming-contract
// violation and fails fast.
func ScopesFor(ctx context.Context, buildSystem types.BuildSystem, purpose types.Purpose) []string {
	assertValidPurpose(ctx, purpose)
	switch buildSystem {
	case types.BuildSystemMaven:
		return append([]string(nil), mavenScopes[purpose]...)
	case types.BuildSystemSbt:
		return append([]string(nil), sbtScopes[purpose]...)
	case types.BuildSystemIvy:
		return []string{types.DefaultIvyScope}
	default:
		assert.Assert(ctx, false, fmt.Sprintf("unknown build system: %s", buildSystem))
		return nil
	}
}

func assertValidPurpose(ctx context.Context, purpose types.Purpose) {
	valid := purpose == types.PurposeCompile ||
		purpose == types.PurposeRuntime ||
		purpose == types.PurposeTest
	assert.Assert(ctx, valid, fmt.Sprintf("unsupported purpose: %s", purpose))
}
