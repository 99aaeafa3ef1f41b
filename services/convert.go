package services

import (
	"fmt"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
)

// ToModel hydrates a typed model from a schemaless document.
func ToModel(doc Document, out interface{}) error {
	item, err := attributevalue.MarshalMap(doc)
	if err != nil {
		return fmt.Errorf("failed to convert document: %w", err)
	}
	if err := attributevalue.UnmarshalMap(item, out); err != nil {
		return fmt.Errorf("failed to hydrate model: %w", err)
	}
	return nil
}

// DocumentFromModel flattens a typed model into the document shape the
// façade writes.
func DocumentFromModel(v interface{}) (Document, error) {
	item, err := attributevalue.MarshalMap(v)
	if err != nil {
		return nil, fmt.Errorf("failed to convert model: %w", err)
	}
	var doc Document
	if err := attributevalue.UnmarshalMap(item, &doc); err != nil {
		return nil, fmt.Errorf("failed to flatten model: %w", err)
	}
	return doc, nil
}
