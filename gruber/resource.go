package gruber

// IsDigitalResource reports whether word starts like a file path, URL, domain,
// or email address. Such words are never re-cased.
func IsDigitalResource(word string) bool {
	return patterns().digitalResource.MatchString(word)
}
