package model

import "fmt"

// Contact is the financial aid advisor contact block.
type Contact struct {
	Org     string
	Email   string
	Phone   string // digits only
	Office  string
	Address string
	Hours   string
	Days    string
}

// Advisor is the support contact shown on the Help tab.
var Advisor = Contact{
	Org:     "UT Dallas",
	Email:   "financial.aid@utdallas.edu",
	Phone:   "9728832941",
	Office:  "Student Services Building (SSB), 2nd Floor",
	Address: "800 W. Campbell Rd, Richardson, TX 75080",
	Days:    "Monday - Friday",
	Hours:   "8:00 AM - 5:00 PM",
}

// PhoneDisplay formats a ten digit phone number as (972) 883-2941.
func (c Contact) PhoneDisplay() string {
	if len(c.Phone) != 10 {
		return c.Phone
	}
	return fmt.Sprintf("(%s) %s-%s", c.Phone[:3], c.Phone[3:6], c.Phone[6:])
}

// MailtoURL returns the mailto: link for the contact email.
func (c Contact) MailtoURL() string { return "mailto:" + c.Email }

// TelURL returns the tel: link for the contact phone.
func (c Contact) TelURL() string { return "tel:" + c.Phone }

// Resource is an additional campus resource.
type Resource struct {
	Name string
	Note string
}

// Resources are listed under "Additional Resources".
var Resources = []Resource{
	{Name: "Bursar Office", Note: "Tuition & Payments"},
	{Name: "Student Success Center", Note: "Academic & career support"},
	{Name: "Scholarship Portal", Note: "Search & apply for scholarships"},
}
