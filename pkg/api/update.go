package api

import "time"

// ProjectUpdate carries exactly one edit. Set one field; a request with none
// or several set is rejected.
type ProjectUpdate struct {
	SetNotes   *SetNotes   `json:"setNotes,omitempty"`
	SetDetails *SetDetails `json:"setDetails,omitempty"`

	SetTasks        *SetTasks        `json:"setTasks,omitempty"`
	AddTask         *AddTask         `json:"addTask,omitempty"`
	RenameTask      *RenameTask      `json:"renameTask,omitempty"`
	SetTaskDone     *SetTaskDone     `json:"setTaskDone,omitempty"`
	SetTaskDeadline *SetTaskDeadline `json:"setTaskDeadline,omitempty"`
	RemoveTask      *RemoveTask      `json:"removeTask,omitempty"`

	SetExpenses        *SetExpenses        `json:"setExpenses,omitempty"`
	AddExpense         *AddExpense         `json:"addExpense,omitempty"`
	ReplaceExpenseLine *ReplaceExpenseLine `json:"replaceExpenseLine,omitempty"`
	RemoveExpenseLine  *RemoveExpenseLine  `json:"removeExpenseLine,omitempty"`

	SetGuests    *SetGuests    `json:"setGuests,omitempty"`
	AddGuest     *AddGuest     `json:"addGuest,omitempty"`
	ReplaceGuest *ReplaceGuest `json:"replaceGuest,omitempty"`
	RemoveGuest  *RemoveGuest  `json:"removeGuest,omitempty"`

	SetTiming         *SetTiming         `json:"setTiming,omitempty"`
	AddTimingEntry    *AddTimingEntry    `json:"addTimingEntry,omitempty"`
	EditTimingEntry   *EditTimingEntry   `json:"editTimingEntry,omitempty"`
	RemoveTimingEntry *RemoveTimingEntry `json:"removeTimingEntry,omitempty"`
}

type SetNotes struct {
	Notes string `json:"notes"`
}

type SetDetails struct {
	GroomName        string    `json:"groomName"`
	BrideName        string    `json:"brideName"`
	Date             time.Time `json:"date"`
	VenueName        string    `json:"venueName"`
	GuestsCount      string    `json:"guestsCount"`
	PrepLocation     string    `json:"prepLocation"`
	RegistrationType string    `json:"registrationType"`
	ClientPassword   string    `json:"clientPassword"`
}

type SetTasks struct {
	Tasks []Task `json:"tasks"`
}

type AddTask struct {
	Task Task `json:"task"`
}

type RenameTask struct {
	TaskId string `json:"taskId"`
	Text   string `json:"text"`
}

type SetTaskDone struct {
	TaskId string `json:"taskId"`
	Done   bool   `json:"done"`
}

type SetTaskDeadline struct {
	TaskId   string    `json:"taskId"`
	Deadline time.Time `json:"deadline"`
}

type RemoveTask struct {
	TaskId string `json:"taskId"`
}

type SetExpenses struct {
	Expenses []ExpenseInput `json:"expenses"`
}

type AddExpense struct {
	Expense ExpenseInput `json:"expense"`
}

// ExpenseInput is a ledger line as typed into the form. Every ledger write
// takes amounts as free text; anything unparsable counts as zero.
type ExpenseInput struct {
	Category string `json:"category"`
	Name     string `json:"name"`
	Plan     string `json:"plan"`
	Fact     string `json:"fact"`
	Paid     string `json:"paid"`
	Note     string `json:"note"`
}

type ReplaceExpenseLine struct {
	Index   int          `json:"index"`
	Expense ExpenseInput `json:"expense"`
}

type RemoveExpenseLine struct {
	Index int `json:"index"`
}

type SetGuests struct {
	Guests []Guest `json:"guests"`
}

type AddGuest struct {
	Guest Guest `json:"guest"`
}

type ReplaceGuest struct {
	Guest Guest `json:"guest"`
}

type RemoveGuest struct {
	GuestId string `json:"guestId"`
}

type SetTiming struct {
	Entries []TimingEntry `json:"entries"`
}

type AddTimingEntry struct {
	Entry TimingEntry `json:"entry"`
}

type EditTimingEntry struct {
	Entry TimingEntry `json:"entry"`
}

type RemoveTimingEntry struct {
	EntryId string `json:"entryId"`
}
