package domain

// requiredJobFields lists the fields every new Job must carry, in the
// order they are reported when missing.
var requiredJobFields = []string{"title", "postedBy", "category", "summary", "coverImage", "userEmail"}

// reservedJobFields are server-managed; caller-supplied values for them
// are dropped so they cannot collide with the stamped document fields.
var reservedJobFields = map[string]struct{}{
	"_id":        {},
	"postedDate": {},
	"createdAt":  {},
	"updatedAt":  {},
}

// JobInput is the caller-supplied payload for creating a Job.
type JobInput struct {
	Title      string
	PostedBy   string
	Category   string
	Summary    string
	CoverImage string
	UserEmail  string
	Extra      map[string]any
}

// JobInputFromMap splits a decoded JSON body into the known Job fields
// and an open-ended extras map. Reserved server-stamped keys are dropped.
func JobInputFromMap(m map[string]any) JobInput {
	in := JobInput{}

	for key, val := range m {
		if _, reserved := reservedJobFields[key]; reserved {
			continue
		}

		switch key {
		case "title":
			in.Title = asString(val)
		case "postedBy":
			in.PostedBy = asString(val)
		case "category":
			in.Category = asString(val)
		case "summary":
			in.Summary = asString(val)
		case "coverImage":
			in.CoverImage = asString(val)
		case "userEmail":
			in.UserEmail = asString(val)
		default:
			if in.Extra == nil {
				in.Extra = make(map[string]any)
			}
			in.Extra[key] = val
		}
	}

	return in
}

// asString narrows a decoded JSON value; non-string values count as absent.
func asString(v any) string {
	s, _ := v.(string)
	return s
}

// Validate reports every missing required field by name.
func (in JobInput) Validate() error {
	values := map[string]string{
		"title":      in.Title,
		"postedBy":   in.PostedBy,
		"category":   in.Category,
		"summary":    in.Summary,
		"coverImage": in.CoverImage,
		"userEmail":  in.UserEmail,
	}

	var missing []string
	for _, field := range requiredJobFields {
		if values[field] == "" {
			missing = append(missing, field)
		}
	}

	if len(missing) > 0 {
		return &ValidationError{Missing: missing}
	}
	return nil
}
