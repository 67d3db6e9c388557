package profile

// Normalize converts an arbitrary decoded JSON value into a fully-populated
// Profile. It is total: any input, however malformed, yields a valid Profile
// with fallback literals in place of missing or mistyped fields. Scalar fields
// fall back to a placeholder string; the work_experience and education
// sequences fall back to an empty slice instead, never to a placeholder item.
func Normalize(raw interface{}) Profile {
	obj, _ := raw.(map[string]interface{})

	return Profile{
		Name:           stringField(obj, "name", FallbackName),
		Email:          stringField(obj, "email", FallbackEmail),
		Phone:          stringField(obj, "phone", FallbackPhone),
		Website:        stringField(obj, "website", FallbackWebsite),
		Summary:        stringField(obj, "summary", FallbackSummary),
		WorkExperience: normalizeWork(obj["work_experience"]),
		Education:      normalizeEducation(obj["education"]),
		Skills:         stringList(obj["skills"], FallbackSkills),
	}
}

// stringField returns obj[key] if it is a non-empty string, otherwise the
// fallback. No type coercion is attempted for scalars: numbers, booleans and
// nested objects all fall back.
func stringField(obj map[string]interface{}, key, fallback string) string {
	if s, ok := obj[key].(string); ok && s != "" {
		return s
	}
	return fallback
}

func normalizeWork(raw interface{}) []WorkItem {
	list, ok := raw.([]interface{})
	if !ok {
		return []WorkItem{}
	}

	items := make([]WorkItem, 0, len(list))
	for _, entry := range list {
		obj, _ := entry.(map[string]interface{})
		items = append(items, WorkItem{
			JobTitle:         stringField(obj, "job_title", FallbackJobTitle),
			Company:          stringField(obj, "company", FallbackCompany),
			Dates:            stringField(obj, "dates", FallbackDates),
			Responsibilities: stringList(obj["responsibilities"], FallbackResponsibilities),
		})
	}
	return items
}

func normalizeEducation(raw interface{}) []EduItem {
	list, ok := raw.([]interface{})
	if !ok {
		return []EduItem{}
	}

	items := make([]EduItem, 0, len(list))
	for _, entry := range list {
		obj, _ := entry.(map[string]interface{})
		items = append(items, EduItem{
			Degree:     stringField(obj, "degree", FallbackDegree),
			University: stringField(obj, "university", FallbackUniversity),
			Dates:      stringField(obj, "dates", FallbackDates),
		})
	}
	return items
}

// stringList coerces a value into a slice of strings: a list keeps its string
// elements in order, a bare string is wrapped as a single-element slice, and
// anything else yields [fallback].
func stringList(raw interface{}, fallback string) []string {
	switch v := raw.(type) {
	case []interface{}:
		out := make([]string, 0, len(v))
		for _, entry := range v {
			if s, ok := entry.(string); ok {
				out = append(out, s)
			}
		}
		return out
	case string:
		return []string{v}
	default:
		return []string{fallback}
	}
}
