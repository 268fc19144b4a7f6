// Package transcript models the conversation sent to the completion service.
//
// Includes:
//   - Turn: one role-tagged transcript entry whose parts are raw JSON, so
//     model-produced turns round-trip byte-for-byte with whatever provenance
//     metadata the service attached.
//   - Message: the caller-facing history item carried on every request.
//   - Build: maps caller history plus the new user message into the turn
//     sequence, anchoring the system instruction in the first user turn only.
package transcript
