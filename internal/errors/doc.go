// Package errors is the structured error type used across waaagh-api.
//
// Every error carries a Code, a user-facing Message, an optional Cause and
// optional metadata. Codes map onto HTTP statuses at the transport edge.
//
// Creating errors:
//
//	err := errors.NotFoundf("army %s not found", armyID)
//	err := errors.InvalidArgument("points limit must be positive")
//
// Adding metadata:
//
//	err := errors.NotFound("unit not found").
//	    WithMeta("army_id", armyID).
//	    WithMeta("instance_id", instanceID)
//
// Wrapping keeps the original code:
//
//	if _, err := repo.Get(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to load army")
//	}
//
// Validation of inputs and configuration goes through the builder:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("name", input.Name, vb)
//	errors.ValidatePositive("pointsLimit", input.PointsLimit, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// Army rule violations (too many points, duplicated epic heroes...) are not
// errors. They are reported as wh40k.ValidationResult values by the engine.
//
// Layer guidelines:
//   - repositories return NotFound / AlreadyExists / InvalidArgument and wrap
//     storage failures as Internal
//   - the orchestrator validates input and wraps repository errors with context
//   - handlers translate codes with Code.HTTPStatus and never log twice
package errors
