// Package profiles acquires and decodes the configuration profiles installed
// on a Mac.
//
// A Source yields the raw property-list document printed by
// `profiles -P -o stdout-xml` (or a saved copy of it). Decode turns that
// document into Profiles: a display name plus the payload items the profile
// carries, each item exposing its PayloadContent dictionary as value.Values.
//
// Decoding is tolerant at the item level. A profile entry or payload item
// with an unexpected shape is kept but marked, and the analyzer skips it;
// only an unreadable document or a missing "_computerlevel" list is fatal.
package profiles
