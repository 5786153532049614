// Package mock provides test doubles for the ai interfaces.
//
// The mocks generate deterministic results by default and allow custom
// behavior injection via function fields, so business logic can be tested
// without external AI services.
package mock
