package psa

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/agentstation/contactsync/internal/config"
	"github.com/agentstation/contactsync/internal/transport"
	"github.com/agentstation/contactsync/pkg/errors"
)

// API resource paths.
const (
	configurationsPath = "/company/configurations"
	contactsPath       = "/company/contacts"
)

// Client is a typed client for the PSA REST API.
type Client struct {
	transport *transport.Client
	baseURL   string
	pageSize  int
}

// NewClient creates a PSA client from the run configuration.
func NewClient(cfg *config.Config) *Client {
	auth := &transport.BasicAuth{
		CompanyID:  cfg.CompanyID,
		PublicKey:  cfg.PublicKey,
		PrivateKey: cfg.PrivateKey,
	}
	return &Client{
		transport: transport.New(auth, cfg.ClientID, cfg.MediaType),
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		pageSize:  cfg.PageSize,
	}
}

// PageSize returns the page size used for list requests.
func (c *Client) PageSize() int {
	return c.pageSize
}

// companyCondition builds the conditions expression filtering a resource by
// company identifier. The earlier integration used single-quoted equality
// for configurations and double-quoted equality for contacts; the API
// evaluates both identically, so a single form is used for both resources.
func companyCondition(company string) string {
	return `company/identifier="` + company + `"`
}

// listURL composes a paginated list URL for the given resource path.
func (c *Client) listURL(path, company string, page int) string {
	q := url.Values{}
	q.Set("conditions", companyCondition(company))
	q.Set("page", strconv.Itoa(page))
	q.Set("pageSize", strconv.Itoa(c.pageSize))
	return c.baseURL + path + "?" + q.Encode()
}

// listPages iterates a list endpoint from page 1, requesting pageSize
// records per page and stopping on the first short or empty page. A page
// failure aborts the fetch; the records accumulated before the failure are
// returned alongside the error so callers can persist partial progress.
func listPages[T any](ctx context.Context, c *Client, path, resource, company string) ([]T, error) {
	var all []T
	for page := 1; ; page++ {
		resp, err := c.transport.Get(ctx, c.listURL(path, company, page))
		if err != nil {
			return all, errors.WrapResource("fetch", resource, fmt.Sprintf("page %d", page), err)
		}

		var records []T
		if err := transport.DecodeResponse(resp, resource, &records); err != nil {
			return all, errors.WrapResource("fetch", resource, fmt.Sprintf("page %d", page), err)
		}

		all = append(all, records...)

		// Short page = last page.
		if len(records) < c.pageSize {
			return all, nil
		}
	}
}

// ListConfigurations pages through the configurations of a company.
func (c *Client) ListConfigurations(ctx context.Context, company string) ([]Configuration, error) {
	return listPages[Configuration](ctx, c, configurationsPath, "configurations", company)
}

// ListContacts pages through the contact directory of a company.
func (c *Client) ListContacts(ctx context.Context, company string) ([]Contact, error) {
	return listPages[Contact](ctx, c, contactsPath, "contacts", company)
}

// ContactHref returns the API href of a contact, used when building a
// contact reference for a configuration update.
func (c *Client) ContactHref(id int) string {
	return fmt.Sprintf("%s%s/%d", c.baseURL, contactsPath, id)
}

// GetConfiguration fetches the full detail of one configuration.
func (c *Client) GetConfiguration(ctx context.Context, id int) (*Configuration, error) {
	endpoint := fmt.Sprintf("%s%s/%d", c.baseURL, configurationsPath, id)

	resp, err := c.transport.Get(ctx, endpoint)
	if err != nil {
		return nil, errors.WrapResource("fetch", "configuration", strconv.Itoa(id), err)
	}

	var conf Configuration
	if err := transport.DecodeResponse(resp, "configurations", &conf); err != nil {
		return nil, errors.WrapResource("fetch", "configuration", strconv.Itoa(id), err)
	}
	return &conf, nil
}

// UpdateConfiguration resubmits the entire configuration body via PUT
// (overwrite semantics) and returns the record as stored by the API.
func (c *Client) UpdateConfiguration(ctx context.Context, conf *Configuration) (*Configuration, error) {
	body, err := json.Marshal(conf)
	if err != nil {
		return nil, errors.WrapResource("update", "configuration", strconv.Itoa(conf.ID), err)
	}

	endpoint := fmt.Sprintf("%s%s/%d", c.baseURL, configurationsPath, conf.ID)
	resp, err := c.transport.Put(ctx, endpoint, body)
	if err != nil {
		return nil, errors.WrapResource("update", "configuration", strconv.Itoa(conf.ID), err)
	}

	var updated Configuration
	if err := transport.DecodeResponse(resp, "configurations", &updated); err != nil {
		return nil, errors.WrapResource("update", "configuration", strconv.Itoa(conf.ID), err)
	}
	return &updated, nil
}
