// Package ufw models the state of the UFW host firewall and keeps a cached
// snapshot of it in sync with the live tool.
//
// The package has three layers:
//
//   - pure parsers (parser.go) that turn `ufw status` text into Status and
//     RuleSet values, tolerating both the plain and the numbered output
//     dialects without ever dropping a line
//   - rule specifications (spec.go) validated client-side before any
//     privileged call is made
//   - the Repository (repository.go), a mutex-serialized owner of the one
//     cached Snapshot, whose mutating operations delegate to the privilege
//     executor and re-read the live state on success
//
// UFW itself stays the source of truth; nothing here persists rules.
package ufw
