// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

// Set groups every store rooted at one data directory.
type Set struct {
	Admins        *AdminStore
	Businesses    *BusinessStore
	Pricing       *PricingStore
	Blog          *BlogStore
	Masterclasses *MasterclassStore
	Publications  *PublicationStore
	Services      *ServiceStore
	Contacts      *ContactStore
	Newsletter    *NewsletterStore
	Analytics     *AnalyticsStore
	Settings      *SettingsStore
	About         *AboutStore
}

// NewSet opens all stores under dataDir. Files are created lazily on the
// first write.
func NewSet(dataDir string) *Set {
	return &Set{
		Admins:        NewAdminStore(dataDir),
		Businesses:    NewBusinessStore(dataDir),
		Pricing:       NewPricingStore(dataDir),
		Blog:          NewBlogStore(dataDir),
		Masterclasses: NewMasterclassStore(dataDir),
		Publications:  NewPublicationStore(dataDir),
		Services:      NewServiceStore(dataDir),
		Contacts:      NewContactStore(dataDir),
		Newsletter:    NewNewsletterStore(dataDir),
		Analytics:     NewAnalyticsStore(dataDir),
		Settings:      NewSettingsStore(dataDir),
		About:         NewAboutStore(dataDir),
	}
}
