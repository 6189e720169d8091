package planner

// Package planner turns an ordered task list with hour estimates into a
// schedule of start and end dates. Capacity is a shared per-day hour
// budget: tasks fill the current day's remainder before spilling onto
// the next working day, so short tasks can share a day. Weekends and
// holidays are delegated to the calendar package and never appear in the
// output.
