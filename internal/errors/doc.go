// Package errors provides structured errors for the interfacing module.
//
// Every error carries a Code, a user-facing Message, an optional Cause and
// free-form Meta. Orchestrators return these directly so the CLI can print
// the message and pick an exit status from the code.
//
// Creating errors:
//
//	err := errors.NotFound("Suggestion not found").WithMeta("suggestion_id", id)
//	err := errors.Unavailable("skill engine not connected")
//
// Wrapping errors keeps the code of the innermost structured error:
//
//	if err := repo.Save(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to save session")
//	}
//
// Validating configuration:
//
//	vb := errors.NewValidationBuilder()
//	if c.Engine == nil {
//	    vb.RequiredField("Engine")
//	}
//	errors.ValidateFloatRange("ChaosLevel", s.ChaosLevel, 0, 1, vb)
//	return vb.Build()
//
// # Layer guidelines
//
// Repositories return NotFound for missing or expired sessions and wrap
// storage failures. Orchestrators validate input with InvalidArgument,
// report missing integrations with Unavailable and model responses that
// cannot be used with FailedPrecondition. The CLI maps codes to exit
// statuses with Code.ExitCode.
package errors
