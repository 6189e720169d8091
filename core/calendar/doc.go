package calendar

// Package calendar provides day-granularity predicates over a working
// calendar: weekend and holiday checks, working-day tests and a bounded
// next-working-day search. All functions are pure; dates are compared by
// calendar day so the time-of-day carried by inputs never matters.
