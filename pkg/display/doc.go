// Package display maps property keys to human labels, formats property
// values for presentation, and resolves named property profiles for info
// panels.
package display
