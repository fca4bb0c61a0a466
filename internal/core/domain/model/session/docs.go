// Package session provides the per-stage work records of the fulfillment
// workflow: one PickingSession, PackingSession, or DeliverySession per
// invoice per stage.
//
// Each session tracks the operator assigned by the stage-start scan, the
// start/end times, free-text notes, and a per-stage sub-status machine. A
// session with a nil end time is open; long-open sessions are a valid,
// inspectable state.
//
// Key business rules:
//   - At most one session per invoice per stage (enforced at the persistence
//     layer by a unique constraint on the invoice reference)
//   - Completion is allowed only by the operator who started the stage,
//     except on the flagged re-pick path
//   - A session's Review sub-status is rolled back to in-progress only by the
//     review resolution path
package session
