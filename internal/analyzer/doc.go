// Package analyzer finds preference keys that several configuration profiles
// define, and decides whether those definitions agree.
//
// The pipeline runs once per check:
//   - Flatten turns every profile's payload items into Entries, unwrapping
//     managed-preferences (MCX) payloads so forced settings count as
//     ordinary preference keys of the enclosing profile
//   - Aggregate groups entries by preference key in discovery order
//   - Classify labels each group Unique, SameProfileRepeat, ConflictFree or
//     Conflicting
//   - Analyze keeps the ConflictFree and Conflicting groups, sorted by key
//
// Groups in which a profile name repeats are suppressed. Profiles without a
// display name all share the empty name, so two unnamed profiles defining
// the same key are suppressed as well.
package analyzer
