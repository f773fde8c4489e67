// Package reliability implements the two-regime availability model of a
// facility made of n identical units of which k must run to serve peak load.
//
// The year is split between a regime where every unit is exposed to forced
// outages only and a regime where exactly one unit is away on scheduled
// maintenance. The second regime lasts n times the per-unit outage hours.
// Each regime contributes the binomial probability that at least k units are
// up, weighted by its share of the 8760 hour year.
package reliability
