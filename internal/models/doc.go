// Package models defines the wire and domain types shared by the aggregator
// service and the playback client.
//
// The package contains:
//   - [Participant] : one group member's age and genre preferences, the unit
//     of input for playlist generation
//   - [GenerateRequest] / [GenerateResponse] : the JSON contract between the
//     playback client and the aggregator endpoint
//   - the fixed genre catalog offered to participants (see [Genres])
//
// Participants are transient input: they are never persisted and never mutated
// once a generation request has been submitted.
package models
