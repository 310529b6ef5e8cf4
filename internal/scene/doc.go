// Package scene loads YAML scene files and compiles them into a render pipeline over
// Cell channels.
package scene
