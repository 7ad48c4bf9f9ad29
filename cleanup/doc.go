// Package cleanup removes the files, folders and registry keys left behind
// by earlier Logon App versions.
//
// Work is split into strategies. Each strategy is one idempotent removal
// unit: a target that is already gone counts as success, so any strategy
// can run again after a partial or repeated uninstall. A Manager runs an
// ordered list of strategies to completion and ANDs their results. A
// Factory assembles managers for the named plans used by the custom actions
// and the console uninstaller.
//
//	f := cleanup.NewFactory(cleanup.DefaultTargets(), platform.SystemRegistry())
//	m, err := f.Build(cleanup.PlanFull, log)
//	if err != nil {
//	    return err
//	}
//	ok := m.ExecuteAll()
package cleanup
