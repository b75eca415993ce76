// Package resolver implements multi-stage collision resolution over a
// batch of parsed modules.
//
// Resolution discovers every top-level name declared by more than one
// module, renames the colliding declarations to fresh globally unique
// identifiers, and threads each rename through references, re-exports,
// and imports across the whole batch.
//
// # Stages
//
// The orchestrator runs the following stages in order, each a full
// barrier (every module finishes a stage before any module enters the
// next, because later stages read rename maps populated by earlier
// ones):
//
//  1. Collect: index top-level declarations per module
//  2. Rename: assign fresh names at colliding declaration sites
//  3. References: rewrite call/member/new expressions
//  4. Exports: propagate renames into module public surfaces
//  5. Imports: pull renames across module boundaries
//  6. References (again)
//  7. Exports (again)
//
// The trailing repetition pushes renames one additional hop through
// import/re-export chains. With Config.Fixpoint the import, reference,
// and export stages instead repeat until no rename map grows, bounded
// by the batch size, which resolves chains of any depth.
//
// # Usage
//
//	resolver.Resolve(mods, resolver.Config{Generator: gen, Logger: logger})
package resolver

import (
	"log/slog"

	"github.com/suseejs/duplicates/internal/namegen"
)

// Config carries the per-run collaborators of a Resolve invocation.
type Config struct {
	// Generator supplies fresh names. It must be configured before the
	// run; the pipeline consumes one unit of its counter per rename.
	Generator *namegen.Generator

	// Logger enables debug/trace output. Nil disables logging.
	Logger *slog.Logger

	// Fixpoint repeats the rewrite cycle until the rename maps stop
	// growing instead of the fixed two-cycle schedule.
	Fixpoint bool
}

// Resolve runs the pipeline over the batch, mutating each module's tree
// in place. Every module's text is produced from its tree by the caller
// after Resolve returns.
func Resolve(mods []*Module, cfg Config) {
	ctx := newResolverContext(mods, cfg.Generator, cfg.Logger)
	ctx.publishTransitive = cfg.Fixpoint

	runStage(ctx, "collect", collectDeclarations)
	runStage(ctx, "rename", renameDeclarations)
	runStage(ctx, "references", rewriteReferences)
	runStage(ctx, "exports", rewriteExports)
	runStage(ctx, "imports", rewriteImports)

	if cfg.Fixpoint {
		resolveToFixpoint(ctx)
	} else {
		runStage(ctx, "references", rewriteReferences)
		runStage(ctx, "exports", rewriteExports)
	}

	callSite, imports, exports := ctx.mapSizes()
	ctx.Log(slog.LevelInfo, "resolution complete",
		slog.Int("modules", len(mods)),
		slog.Int("renames", callSite),
		slog.Int("import_entries", imports),
		slog.Int("export_entries", exports))
}

func runStage(ctx *resolverContext, name string, stage func(*resolverContext)) {
	ctx.Log(slog.LevelDebug, "starting stage", slog.String("stage", name))
	stage(ctx)
	ctx.Log(slog.LevelDebug, "stage complete", slog.String("stage", name))
}

// resolveToFixpoint repeats the rewrite cycle until the import and
// export maps stop growing. A rename crosses at most one module
// boundary per cycle, so the batch size bounds the iteration count.
func resolveToFixpoint(ctx *resolverContext) {
	for round := 0; round < len(ctx.modules)+1; round++ {
		_, importsBefore, exportsBefore := ctx.mapSizes()

		runStage(ctx, "references", rewriteReferences)
		runStage(ctx, "exports", rewriteExports)
		runStage(ctx, "imports", rewriteImports)

		_, importsAfter, exportsAfter := ctx.mapSizes()
		if importsAfter == importsBefore && exportsAfter == exportsBefore {
			ctx.Log(slog.LevelDebug, "fixpoint reached", slog.Int("rounds", round+1))
			return
		}
	}
	ctx.Log(slog.LevelWarn, "fixpoint iteration cap reached",
		slog.Int("modules", len(ctx.modules)))
}
