// Package mock provides test doubles for the ai interfaces.
//
// The mocks use deterministic default behavior (hash-based embeddings,
// echo chat responses) and support behavior injection via function fields
// plus scripted response queues for multi-call flows.
package mock
