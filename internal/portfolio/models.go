package portfolio

import "time"

// Document is a schemaless record read from the document store. Portfolio,
// skills and project content is served as stored, so it is kept as a map.
type Document map[string]interface{}

// StatusNew is the status given to every new contact submission.
const StatusNew = "new"

// Project is one showcased piece of work. Projects live in their own
// collection and are visible only while Active is set.
type Project struct {
	Title        string   `json:"title" bson:"title"`
	Description  string   `json:"description" bson:"description"`
	Technologies []string `json:"technologies" bson:"technologies"`
	Status       string   `json:"status" bson:"status"`
	Link         string   `json:"link,omitempty" bson:"link,omitempty"`
	Image        string   `json:"image,omitempty" bson:"image,omitempty"`
	Phases       []string `json:"phases,omitempty" bson:"phases,omitempty"`
	Active       *bool    `json:"active,omitempty" bson:"active,omitempty"`
}

// ContactSubmission is a message left through the contact form. It is
// create-only; status changes happen outside this service.
type ContactSubmission struct {
	ID          string    `json:"id" bson:"id"`
	Name        string    `json:"name" bson:"name"`
	Email       string    `json:"email" bson:"email"`
	Message     string    `json:"message" bson:"message"`
	ProjectType *string   `json:"project_type" bson:"project_type"`
	SubmittedAt time.Time `json:"submitted_at" bson:"submitted_at"`
	Status      string    `json:"status" bson:"status"`
}

// AudioInteraction is a write-only analytics event from the audiobook player.
type AudioInteraction struct {
	ID        string    `json:"id" bson:"id"`
	Action    string    `json:"action" bson:"action"` // play|pause|skip, not enforced
	Excerpt   string    `json:"excerpt" bson:"excerpt"`
	Timestamp float64   `json:"timestamp" bson:"timestamp"` // playback position reported by the client
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	IPAddress *string   `json:"ip_address" bson:"ip_address"`
}

// Request bodies use pointer fields where "required" only means present:
// an empty string or a zero timestamp is accepted, a missing key is not.

// ContactRequest is the body accepted by POST /api/contact/submit.
type ContactRequest struct {
	Name        *string `json:"name" binding:"required"`
	Email       string  `json:"email" binding:"required,email"`
	Message     *string `json:"message" binding:"required"`
	ProjectType *string `json:"project_type"`
}

// AudioInteractionRequest is the body accepted by POST /api/audio/interaction.
type AudioInteractionRequest struct {
	Action    *string  `json:"action" binding:"required"`
	Excerpt   *string  `json:"excerpt" binding:"required"`
	Timestamp *float64 `json:"timestamp" binding:"required"`
}
