// Package mock provides test doubles for the ai interfaces.
//
// Without injected behavior the mocks return canned results: the extractor
// yields a fixed placeholder text and the parser a "John Doe" profile. Both
// accept an optional Delay to simulate slow services.
package mock
