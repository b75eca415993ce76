package integration

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// Renames follow sorted path order with one global counter:
// api/client.js declares first, util/text.js last.
func TestDeclarationRenames(t *testing.T) {
	bundle := loadWebapp(t)

	require.Contains(t, bundle["api/client.js"], "function d_log_1(message)")
	require.Contains(t, bundle["util/parse.js"], "function d_normalize_2(input)")
	require.Contains(t, bundle["util/text.js"], "export function d_normalize_3(value)")
	require.Contains(t, bundle["util/text.js"], "function d_log_4(value)")
}

func TestLocalReferencesFollowRenames(t *testing.T) {
	bundle := loadWebapp(t)

	// parse() calls its private normalize, which was renamed.
	require.Contains(t, bundle["util/parse.js"], "return d_normalize_2(input);")
	// The exported parse itself is unique and keeps its name.
	require.Contains(t, bundle["util/parse.js"], "export function parse(input)")
}

func TestImportersFollowExportedRenames(t *testing.T) {
	bundle := loadWebapp(t)

	require.Contains(t, bundle["app.js"], "import { d_normalize_3 } from './util/text';")
	require.Contains(t, bundle["app.js"], "request(d_normalize_3('Home'))")
	// Imports of unique names are untouched.
	require.Contains(t, bundle["app.js"], "import { request } from './api/client';")
	require.Contains(t, bundle["app.js"], "import { Status, register } from './state';")
}

func TestUniqueDeclarationsKeepNames(t *testing.T) {
	bundle := loadWebapp(t)

	require.Contains(t, bundle["api/client.js"], "export function request(path)")
	require.Contains(t, bundle["state.ts"], "export function register(name)")
	require.False(t, strings.Contains(bundle["app.js"], "function d_main"),
		"main is unique and must not be renamed")
}

func TestTypeScriptModuleUntouched(t *testing.T) {
	bundle := loadWebapp(t)

	// Nothing in state.ts collides, so its text survives byte for
	// byte, enum and interface included.
	require.Contains(t, bundle["state.ts"], "export enum Status {")
	require.Contains(t, bundle["state.ts"], "export interface Store {")
	require.Contains(t, bundle["state.ts"], "export class Dispatcher {")
	require.NotContains(t, bundle["state.ts"], "d_")
}
