package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/warp/invoice-engine/billing"
	"github.com/warp/invoice-engine/track"
)

// clientFile is the on-disk shape of clients.yaml:
//
//	clients:
//	  - name: Acme Industries
//	    street: 1616 Index Ct.
//	    city: Redmond
//	    state: WA
//	    zip: "98055"
//	    contact:
//	      last: Coyote
//	      first: Wile
//	      middle: E
type clientFile struct {
	Clients []clientEntry `yaml:"clients"`
}

type clientEntry struct {
	Name    string      `yaml:"name"`
	Street  string      `yaml:"street"`
	City    string      `yaml:"city"`
	State   string      `yaml:"state"`
	Zip     string      `yaml:"zip"`
	Contact contactName `yaml:"contact"`
}

type contactName struct {
	Last   string `yaml:"last"`
	First  string `yaml:"first"`
	Middle string `yaml:"middle"`
}

// LoadClients reads the client roster, keyed by client name. A bad state
// code on any client fails the whole load.
func LoadClients(path string) (map[string]*track.ClientAccount, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read client roster %s: %w", path, err)
	}

	var cf clientFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("parse client roster %s: %w", path, err)
	}

	clients := make(map[string]*track.ClientAccount, len(cf.Clients))
	for _, entry := range cf.Clients {
		address, err := billing.NewAddress(entry.Street, entry.City, entry.State, entry.Zip)
		if err != nil {
			return nil, fmt.Errorf("client %q: %w", entry.Name, err)
		}
		contact := track.PersonalName{
			LastName:   entry.Contact.Last,
			FirstName:  entry.Contact.First,
			MiddleName: entry.Contact.Middle,
		}
		clients[entry.Name] = track.NewClientAccount(entry.Name, contact, address)
	}
	return clients, nil
}
