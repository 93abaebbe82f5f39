// Package temptmp allocates uniquely named temp files and directories per
// session and optionally tracks them for bulk removal.
//
// Invariants:
// - Path never touches the filesystem.
// - Only successful creations made while tracking is enabled are recorded.
// - Records are dropped as a whole when their session is cleaned up.
// - Cleanup is best-effort and never fails because a path is missing.
//
// Usage:
//
//	reg := temptmp.NewRegistry()
//	reg.RegisterExitHook()
//	defer reg.RunExitHook()
//
//	s := reg.CreateTrackedSession("build")
//	f, _ := s.Open(temptmp.Options{Suffix: ".json"})
//	dir, _ := s.Mkdir(temptmp.Options{})
//	_, _ = f, dir
//	removed := s.Cleanup()
//	_ = removed
package temptmp
