// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-contacts-keeper/internal/config"
	"github.com/MKhiriev/go-contacts-keeper/internal/logger"
	"github.com/MKhiriev/go-contacts-keeper/internal/utils"
)

const cloudinaryDeliveryHost = "https://res.cloudinary.com"

// cloudinaryAvatarTransformation crops every avatar to a 250x250 square.
const cloudinaryAvatarTransformation = "c_fill,h_250,w_250"

type cloudinaryUploadResult struct {
	PublicID  string `json:"public_id"`
	Version   int64  `json:"version"`
	SecureURL string `json:"secure_url"`
}

type cloudinaryAvatarStorage struct {
	client *utils.HTTPClient
	cfg    config.Cloudinary

	now    func() time.Time
	logger *logger.Logger
}

// NewCloudinaryAvatarStorage returns an [AvatarStorage] backed by the
// Cloudinary signed upload API.
func NewCloudinaryAvatarStorage(cfg config.Cloudinary, timeout time.Duration, log *logger.Logger) AvatarStorage {
	return &cloudinaryAvatarStorage{
		client: utils.NewHTTPClient(cfg.APIBaseURL, timeout),
		cfg:    cfg,
		now:    time.Now,
		logger: log,
	}
}

// Upload implements [AvatarStorage]. The image is stored under the public id
// "{folder}/{ownerKey}" with overwrite enabled, and the returned URL points
// to a 250x250 fill-cropped rendition of exactly the uploaded version.
func (c *cloudinaryAvatarStorage) Upload(ctx context.Context, ownerKey, filename string, content []byte) (string, error) {
	if len(content) == 0 {
		return "", fmt.Errorf("%w: %w", ErrAvatarUpload, ErrEmptyContent)
	}

	publicID := ownerKey
	if c.cfg.Folder != "" {
		publicID = c.cfg.Folder + "/" + ownerKey
	}

	params := map[string]string{
		"public_id": publicID,
		"overwrite": "true",
		"timestamp": strconv.FormatInt(c.now().Unix(), 10),
	}
	form := map[string]string{
		"api_key":   c.cfg.APIKey,
		"signature": cloudinarySignature(params, c.cfg.APISecret),
	}
	for k, v := range params {
		form[k] = v
	}

	var result cloudinaryUploadResult
	resp, err := c.client.R().
		SetContext(ctx).
		SetFileReader("file", filename, bytes.NewReader(content)).
		SetFormData(form).
		SetResult(&result).
		Post("/v1_1/" + url.PathEscape(c.cfg.CloudName) + "/image/upload")
	if err != nil {
		c.logger.Err(err).Str("func", "cloudinaryAvatarStorage.Upload").Str("public_id", publicID).Msg("upload request failed")
		return "", fmt.Errorf("%w: %w", ErrAvatarUpload, err)
	}
	if err = mapHTTPError(resp); err != nil {
		c.logger.Err(err).Str("func", "cloudinaryAvatarStorage.Upload").Str("public_id", publicID).Msg("upload rejected")
		return "", fmt.Errorf("%w: %w", ErrAvatarUpload, err)
	}
	if result.PublicID == "" || result.Version == 0 {
		return "", fmt.Errorf("%w: %w", ErrAvatarUpload, ErrMalformedResponse)
	}

	return c.deliveryURL(result.PublicID, result.Version), nil
}

func (c *cloudinaryAvatarStorage) deliveryURL(publicID string, version int64) string {
	return fmt.Sprintf("%s/%s/image/upload/%s/v%d/%s",
		cloudinaryDeliveryHost, c.cfg.CloudName, cloudinaryAvatarTransformation, version, publicID)
}

// cloudinarySignature signs upload parameters: the params sorted by name and
// joined as "k=v&k=v", followed by the API secret, hashed with SHA-1.
func cloudinarySignature(params map[string]string, secret string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+params[k])
	}

	return utils.SHA1Hex(strings.Join(pairs, "&") + secret)
}
