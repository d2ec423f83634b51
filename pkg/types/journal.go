package types

const TABLE_JOURNAL_ENTRY = "mn_journal_entry"

// JournalEntry is always owned by exactly one user. SecondaryMoods and Tags
// are comma separated lists, empty string when unset. Mood labels may carry
// an emoji prefix, e.g. "😊 Happy".
type JournalEntry struct {
	ID             string `json:"id" db:"id"`
	UserID         string `json:"user_id" db:"user_id"`
	Title          string `json:"title" db:"title"`
	ContentHTML    string `json:"content_html" db:"content_html"`
	PrimaryMood    string `json:"primary_mood" db:"primary_mood"`
	SecondaryMoods string `json:"secondary_moods" db:"secondary_moods"`
	Category       string `json:"category" db:"category"`
	Tags           string `json:"tags" db:"tags"`
	CreatedAt      int64  `json:"created_at" db:"created_at"`
	UpdatedAt      int64  `json:"updated_at" db:"updated_at"`
}

const DEFAULT_CATEGORY = "Personal"

type CreateJournalEntryArgs struct {
	Title          string `json:"title"`
	ContentHTML    string `json:"content_html"`
	PrimaryMood    string `json:"primary_mood"`
	SecondaryMoods string `json:"secondary_moods"`
	Category       string `json:"category"`
	Tags           string `json:"tags"`
}

type UpdateJournalEntryArgs struct {
	Title          string `json:"title"`
	ContentHTML    string `json:"content_html"`
	PrimaryMood    string `json:"primary_mood"`
	SecondaryMoods string `json:"secondary_moods"`
	Category       string `json:"category"`
	Tags           string `json:"tags"`
}

// JournalEntryDisplay is the list/detail projection with the creation date
// split out for presentation, most recent first.
type JournalEntryDisplay struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	PrimaryMood    string `json:"primary_mood"`
	SecondaryMoods string `json:"secondary_moods"`
	Category       string `json:"category"`
	Tags           string `json:"tags"`
	Day            int    `json:"day"`
	Month          string `json:"month"`
	Year           int    `json:"year"`
	CreatedAt      int64  `json:"created_at"`
}
