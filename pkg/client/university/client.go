/*
Copyright Scoir Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package university is the student agent's HTTP client for a university agent.
package university

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/net/context/ctxhttp"

	"github.com/scoir/studybits/pkg/schema"
)

// ErrTransport is returned for connectivity failures and non-2xx answers.
var ErrTransport = errors.New("university transport failure")

const defaultTimeout = 30 * time.Second

type Option func(opts *Client)

// WithHTTPClient replaces the default client.
func WithHTTPClient(c *http.Client) Option {
	return func(opts *Client) {
		opts.http = c
	}
}

type Client struct {
	endpoint string
	http     *http.Client
	log      *log.Entry
}

// StudentRegistration enrolls a student at a university.
type StudentRegistration struct {
	UserName  string `json:"userName"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	SSN       string `json:"ssn,omitempty"`
}

// StudentInfo is what a university discloses about an enrolled student.
type StudentInfo struct {
	UserName  string `json:"userName"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Connected bool   `json:"connected"`
}

// ExchangePosition is the outcome of a proof a university accepted from a student.
type ExchangePosition struct {
	ProofRecordID string `json:"proofRecordId"`
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Degree        string `json:"degree"`
	Status        string `json:"status"`
}

type OpenRequest struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Version    string   `json:"version"`
	Attributes []string `json:"attributes"`
}

type ProofResult struct {
	Accepted bool `json:"accepted"`
}

func New(endpoint string, opts ...Option) *Client {
	r := &Client{
		endpoint: strings.TrimRight(endpoint, "/"),
		http:     &http.Client{Timeout: defaultTimeout},
		log:      log.WithFields(log.Fields{"component": "university-client", "endpoint": endpoint}),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

func (r *Client) Endpoint() string {
	return r.endpoint
}

func (r *Client) BeginOnboarding(ctx context.Context, userName string) (*schema.ConnectionRequest, error) {
	req := &schema.ConnectionRequest{}
	err := r.do(ctx, http.MethodGet, r.path("onboarding", userName, "begin"), nil, req)
	if err != nil {
		return nil, err
	}

	return req, nil
}

func (r *Client) FinalizeOnboarding(ctx context.Context, userName string, msg *schema.AnoncryptedMessage) error {
	return r.do(ctx, http.MethodPost, r.path("onboarding", userName, "finalize"), msg, nil)
}

func (r *Client) RegisterStudent(ctx context.Context, reg *StudentRegistration) error {
	return r.do(ctx, http.MethodPost, r.path("students"), reg, nil)
}

func (r *Client) GetStudent(ctx context.Context, userName string) (*StudentInfo, error) {
	out := &StudentInfo{}
	err := r.do(ctx, http.MethodGet, r.path("students", userName), nil, out)
	if err != nil {
		return nil, err
	}

	return out, nil
}

func (r *Client) ListExchangePositions(ctx context.Context, userName string) ([]*ExchangePosition, error) {
	var out []*ExchangePosition
	err := r.do(ctx, http.MethodGet, r.path("students", userName, "positions"), nil, &out)
	if err != nil {
		return nil, err
	}

	return out, nil
}

func (r *Client) ListProofRequests(ctx context.Context, v schema.Version, userName string) ([]*OpenRequest, error) {
	var out []*OpenRequest
	err := r.do(ctx, http.MethodGet, r.path("proofs", v.Name, v.Version, userName), nil, &out)
	if err != nil {
		return nil, err
	}

	return out, nil
}

func (r *Client) GetProofRequest(ctx context.Context, v schema.Version, userName, recordID string) (*schema.AuthcryptedMessage, error) {
	msg := &schema.AuthcryptedMessage{}
	err := r.do(ctx, http.MethodGet, r.path("proofs", v.Name, v.Version, userName, recordID, "request"), nil, msg)
	if err != nil {
		return nil, err
	}

	return msg, nil
}

func (r *Client) SubmitProof(ctx context.Context, v schema.Version, userName, recordID string, msg *schema.AuthcryptedMessage) (bool, error) {
	out := &ProofResult{}
	err := r.do(ctx, http.MethodPost, r.path("proofs", v.Name, v.Version, userName, recordID), msg, out)
	if err != nil {
		return false, err
	}

	return out.Accepted, nil
}

func (r *Client) path(segments ...string) string {
	escaped := make([]string, len(segments))
	for i, s := range segments {
		escaped[i] = url.PathEscape(s)
	}

	return r.endpoint + "/" + strings.Join(escaped, "/")
}

func (r *Client) do(ctx context.Context, method, u string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		d, err := json.Marshal(in)
		if err != nil {
			return errors.Wrap(err, "unable to marshal request")
		}
		body = bytes.NewBuffer(d)
	}

	req, err := http.NewRequest(method, u, body)
	if err != nil {
		return errors.Wrap(err, "invalid request")
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := ctxhttp.Do(ctx, r.http, req)
	if err != nil {
		return errors.Wrapf(ErrTransport, "%s %s: %v", method, u, err)
	}
	defer func() { _ = resp.Body.Close() }()

	d, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrapf(ErrTransport, "unable to read response: %v", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return errors.Wrapf(ErrTransport, "%s %s returned %d: %s", method, u, resp.StatusCode, errorMessage(d))
	}

	r.log.WithFields(log.Fields{"method": method, "url": u, "status": resp.StatusCode}).Debug("university call")

	if out == nil || len(d) == 0 {
		return nil
	}

	err = json.Unmarshal(d, out)
	if err != nil {
		return errors.Wrap(err, "invalid response from university")
	}

	return nil
}

func errorMessage(d []byte) string {
	e := struct {
		Error string `json:"error"`
	}{}
	if json.Unmarshal(d, &e) == nil && e.Error != "" {
		return e.Error
	}

	return fmt.Sprintf("%q", string(d))
}
