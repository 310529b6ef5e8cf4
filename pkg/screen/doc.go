/*
Package screen drives a process over a rectangular coordinate range and serializes
the results.

Display visits rows in ascending y order and, inside each row, columns in ascending x
order. For every coordinate it starts from the zero value of the channel, writes the
coordinate into the point slot, runs the process and emits the value slot through a
Sink. After each row it emits a row terminator.

Display performs no bounds checking; that belongs to the process (typically a
grid.Lookup). The only fallible operations are the sink writes, and the first failure
is returned to the caller.
*/
package screen
