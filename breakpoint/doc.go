/*
Package breakpoint implements per-element responsive breakpoints: sparse
tables of named width thresholds, and the resolution of a measured width
against such a table.

A breakpoint table is built from a configuration string of the form

    small: 280, medium: 420, large: 640

and is kept sorted ascending by threshold. Resolving a width against a
table yields the name of the highest threshold the width has reached, or
no state at all if the width lies below every threshold. Resolution is a
pure function; tables are never mutated by it.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package breakpoint
