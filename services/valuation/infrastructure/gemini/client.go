// Package gemini implements the valuation model port on Google's Gemini API,
// using structured JSON output so responses parse deterministically.
package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"

	listingmodels "github.com/ghuser/zwitch/services/listing/domain/models"
	"github.com/ghuser/zwitch/services/valuation/domain/models"
)

// Client calls the Gemini API for valuations and listing-metadata suggestions.
type Client struct {
	client *genai.Client
	model  string
}

// NewClient creates a Gemini-backed model client.
func NewClient(ctx context.Context, apiKey, model string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &Client{client: client, model: model}, nil
}

// valuationSchema constrains model output to the valuation payload shape.
// Range sanity (min <= max, non-negative) is enforced downstream.
var valuationSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"estimatedMinValue": {Type: genai.TypeNumber, Description: "Lower bound of the resale value in INR"},
		"estimatedMaxValue": {Type: genai.TypeNumber, Description: "Upper bound of the resale value in INR"},
		"recommendation":    {Type: genai.TypeString, Description: "One short sentence: sell, donate, or recycle, and why"},
		"suggestedTitle":    {Type: genai.TypeString, Description: "A concise listing title for the device"},
		"suggestedCategory": {Type: genai.TypeString, Description: "One of the marketplace categories"},
	},
	Required: []string{"estimatedMinValue", "estimatedMaxValue", "recommendation", "suggestedTitle", "suggestedCategory"},
}

var categoriesSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"categories": {
			Type:  genai.TypeArray,
			Items: &genai.Schema{Type: genai.TypeString},
		},
	},
	Required: []string{"categories"},
}

var textSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"text": {Type: genai.TypeString},
	},
	Required: []string{"text"},
}

// Valuate asks the model for a resale value range and listing suggestions.
func (c *Client) Valuate(ctx context.Context, req models.ValuationRequest) (models.RawValuation, error) {
	prompt := fmt.Sprintf(`You are a pricing assistant for a local secondhand electronics marketplace in India.
Estimate the current resale value range in INR for the following used device, and recommend whether the owner should sell, donate, or recycle it.

Device type: %s
Model: %s
Condition: %s

Also suggest a concise listing title and the best-fitting category from this exact list: %s.
If the device has no resale value, return 0 for both bounds and recommend recycling.`,
		req.DeviceType, req.Model, conditionOrPhotos(req), categoryList())

	parts := []*genai.Part{genai.NewPartFromText(prompt)}
	for _, photo := range req.Photos {
		parts = append(parts, genai.NewPartFromBytes(photo.Data, photo.MIMEType))
	}

	var raw models.RawValuation
	if err := c.generateJSON(ctx, parts, valuationSchema, &raw); err != nil {
		return models.RawValuation{}, err
	}
	return raw, nil
}

// SuggestCategories asks the model for up to three fitting categories.
func (c *Client) SuggestCategories(ctx context.Context, description string, photos []models.Photo) ([]string, error) {
	prompt := fmt.Sprintf(`You help sellers categorize used electronics on a local marketplace.
Given the item below, pick up to 3 best-fitting categories from this exact list, most likely first: %s.

Item: %s`, categoryList(), description)

	parts := []*genai.Part{genai.NewPartFromText(prompt)}
	for _, photo := range photos {
		parts = append(parts, genai.NewPartFromBytes(photo.Data, photo.MIMEType))
	}

	var out struct {
		Categories []string `json:"categories"`
	}
	if err := c.generateJSON(ctx, parts, categoriesSchema, &out); err != nil {
		return nil, err
	}
	return out.Categories, nil
}

// SuggestTitle asks the model for a listing title.
func (c *Client) SuggestTitle(ctx context.Context, description string, photos []models.Photo) (string, error) {
	prompt := fmt.Sprintf(`You help sellers write listings for used electronics on a local marketplace.
Write one concise, appealing listing title (under 80 characters, no emojis) for the item below.

Item: %s`, description)

	parts := []*genai.Part{genai.NewPartFromText(prompt)}
	for _, photo := range photos {
		parts = append(parts, genai.NewPartFromBytes(photo.Data, photo.MIMEType))
	}

	var out struct {
		Text string `json:"text"`
	}
	if err := c.generateJSON(ctx, parts, textSchema, &out); err != nil {
		return "", err
	}
	return out.Text, nil
}

// SuggestDescription asks the model to draft a listing description.
func (c *Client) SuggestDescription(ctx context.Context, deviceType, deviceModel, condition string) (string, error) {
	prompt := fmt.Sprintf(`You help sellers write listings for used electronics on a local marketplace.
Write an honest, friendly listing description (3-5 sentences, plain text) for this item.
Mention the condition factually; do not invent specifications.

Device type: %s
Model: %s
Condition: %s`, deviceType, deviceModel, condition)

	parts := []*genai.Part{genai.NewPartFromText(prompt)}

	var out struct {
		Text string `json:"text"`
	}
	if err := c.generateJSON(ctx, parts, textSchema, &out); err != nil {
		return "", err
	}
	return out.Text, nil
}

// generateJSON runs one structured-output generation and unmarshals the
// response body into dest.
func (c *Client) generateJSON(ctx context.Context, parts []*genai.Part, schema *genai.Schema, dest any) error {
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, contents, &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   schema,
	})
	if err != nil {
		return fmt.Errorf("gemini generate: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return fmt.Errorf("empty response from gemini")
	}
	if err := json.Unmarshal([]byte(text), dest); err != nil {
		return fmt.Errorf("parse gemini response: %w", err)
	}
	return nil
}

func conditionOrPhotos(req models.ValuationRequest) string {
	if req.Condition != "" {
		return req.Condition
	}
	return "see attached photos"
}

func categoryList() string {
	categories := listingmodels.Categories()
	names := make([]string, len(categories))
	for i, category := range categories {
		names[i] = category.String()
	}
	return strings.Join(names, ", ")
}
