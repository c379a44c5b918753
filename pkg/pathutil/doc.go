// SPDX-License-Identifier: MPL-2.0

// Package pathutil turns arbitrary strings into file and directory names that
// are safe to create and do not collide with existing entries.
//
// Both core operations rewrite only the final segment of a path, in place, and
// return the same pointer so calls can be chained:
//
//	p := types.FilesystemPath("instances/My: Modpack?").Ptr()
//	if _, err := pathutil.Clean(p); err != nil {
//		return err
//	}
//	if _, err := pathutil.Unique(p); err != nil {
//		return err
//	}
//	// *p == "instances/My Modpack" or "instances/My Modpack (1)", ...
//
// Unique only observes the filesystem. Another process may create the chosen
// name before the caller does; use Reserve when the entry should be created
// atomically with the name choice.
package pathutil
