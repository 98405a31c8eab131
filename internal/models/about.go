// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// AboutConfig is the single document stored in about-config.json. Every
// field is a named section replaced wholesale on update.
type AboutConfig struct {
	Mission      Mission       `json:"mission"`
	CEO          CEO           `json:"ceo"`
	Education    []Education   `json:"education"`
	Achievements []Achievement `json:"achievements"`
	Timeline     []Milestone   `json:"timeline"`
	Values       []Value       `json:"values"`
	Stats        []Stat        `json:"stats"`
}

type Mission struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type CEO struct {
	Name       string      `json:"name"`
	Title      string      `json:"title"`
	Rating     string      `json:"rating"`
	Leadership string      `json:"leadership"`
	Vision     string      `json:"vision"`
	Highlights []Highlight `json:"highlights"`
}

type Highlight struct {
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type Education struct {
	Type        string   `json:"type"`
	Icon        string   `json:"icon"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}

type Achievement struct {
	Title       string `json:"title"`
	Year        string `json:"year"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type Milestone struct {
	Year        string `json:"year"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type Value struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type Stat struct {
	Number string `json:"number"`
	Label  string `json:"label"`
	Icon   string `json:"icon"`
}
