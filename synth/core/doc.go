// Package core provides shared numeric helpers and the rendering
// configuration used across the synthesis packages.
package core
