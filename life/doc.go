// Package life is the construction lifecycle of a tensegrity: a closed
// set of stages, a transition table with stage-dependent side effects,
// and the strain→stiffness optimizer run on the way back to slack.
//
// What:
//
//   - Stage: Growing → Shaping → Slack → Pretensing → Pretenst
//     (Pretenst is terminal-stable but revisitable via Slack)
//   - Life: an immutable token wrapping the current stage; WithStage
//     is a pure function of (current, requested, preferences) that
//     performs the transition's side effects before returning the new
//     token
//   - StrainToStiffness: redistributes stiffness across pull members in
//     proportion to observed strain relative to the population average
//
// Transition side effects:
//
//   - Shaping→Slack with AdoptLengths: commit physical lengths as rest
//     lengths, settle the anchored base face onto the ground, remove
//     remaining scaffold members, snapshot the engine
//   - Pretenst→Slack with StrainToStiffness: run the optimizer; with
//     AdoptLengths instead: commit lengths and snapshot; otherwise a
//     plain stage change
//
// Requesting the current stage is a silent no-op. Any pair not in the
// table yields ErrIllegalTransition wrapped with both stage names;
// the caller is expected to treat it as fatal.
package life
