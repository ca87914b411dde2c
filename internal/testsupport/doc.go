// Package testsupport provides shared fixtures for setlister tests: seeded
// configurations and an in-memory Drive API fake.
package testsupport
