package domain

// NewSubscriber is a sign-up whose fields have all been validated.
type NewSubscriber struct {
	Email SubscriberEmail
	Name  SubscriberName
}

// ParseNewSubscriber validates both fields and returns the first failure.
func ParseNewSubscriber(name, email string) (NewSubscriber, error) {
	parsedName, err := ParseSubscriberName(name)
	if err != nil {
		return NewSubscriber{}, err
	}
	parsedEmail, err := ParseSubscriberEmail(email)
	if err != nil {
		return NewSubscriber{}, err
	}
	return NewSubscriber{Email: parsedEmail, Name: parsedName}, nil
}
