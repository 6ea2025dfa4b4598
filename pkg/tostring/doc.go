// Package tostring picks the renderer used to turn model objects into
// display strings.
//
// The strategy is named by configuration (to_string_renderer) and looked
// up in the render factory registry. One instance per name is built on
// first use and kept in a bounded LRU; evicted entries are rebuilt the
// next time they are needed. Registry values can be used directly, or
// through the process-wide Default.
package tostring
