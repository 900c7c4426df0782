// Package distprobe judges end-to-end fixture programs installed by a
// build and packaging pipeline.
//
// A fixture is a minimal executable that proves one aspect of packaging
// worked: that it was installed at all, that generated sources were
// shipped, that private definitions were visible to it, and that each of
// its dependency packages resolved. It prints one line per check:
//
//	e2e.dist.exe-install-to-bin = 1
//	e2e.dist.packages-generated-src = 1
//
// and always exits 0. Results live in the printed values, never in the
// exit status.
//
// # Parsing and Verifying
//
// [Parse] turns fixture output into [Line] values and [Verify] compares
// them with the keys a fixture is expected to print:
//
//	lines, err := distprobe.Parse(out)
//	if err != nil {
//		return err
//	}
//	err = distprobe.Verify(lines, []string{"e2e.dist.exe-install-to-bin"})
//
// Verify reports every problem at once, each as a [*CheckError] wrapping
// [ErrMissingKey], [ErrUnexpectedKey] or [ErrCheckFailed].
//
// # Running Fixtures
//
// A [Manifest] lists installed fixtures and their expectations. A
// [Harness] runs them:
//
//	m, err := distprobe.LoadManifest("e2e.yaml")
//	if err != nil {
//		return err
//	}
//	fixtures, _ := m.Select()
//	results, err := distprobe.NewHarness().
//		WithLogger(slog.Default()).
//		CheckAll(ctx, fixtures)
//
// UUID fixtures print a single canonical UUID instead of diagnostic lines;
// see [ValidateUUID].
//
// # Testing
//
// Inject a custom [CommandExecutor] via [Harness.WithExecutor] to replace
// real fixture processes with deterministic test doubles.
//
// The fixture programs themselves live in the fixture and mkuuid packages
// and under cmd/.
package distprobe
