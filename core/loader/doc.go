// Package loader registers HTTP features with the server.
//
// A Feature names itself, says whether it is enabled and mounts its routes on
// a fiber.Router. The Manager loads enabled features in registration order and
// stops at the first one that fails.
package loader
