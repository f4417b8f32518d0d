// Package models defines the core domain models for Wed.Control.
//
// # Models
//
//   - Project: one event's planning workspace
//   - Task: a checklist item with a deadline
//   - Expense: one budget ledger line (plan, fact, paid)
//   - Guest: one entry of the guest roster
//   - TimingEntry: one step of the day schedule
//   - TeamMember: an organizer who can own projects
//   - Profile: the signed-in user (owner or guest viewer)
//
// # Design Principles
//
// 1. **Values, not pointers**: projects are copied by value and nested
// collections are replaced wholesale on every edit
// 2. **Opaque IDs**: every identifier is a string; new ones are UUIDs
// 3. **Derived data is never stored**: remaining amounts, totals and
// partitions are computed by the calculator package
package models
