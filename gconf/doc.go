/*
Package gconf implements a configuration store intended to be used as a global,
in-database configuration.

Each extension keeps a single configuration entity stored under the "_c:"
prefixed key of its package name. The entity is loaded from the "conf" section
of the genesis file and validated before it is written.
*/
package gconf
