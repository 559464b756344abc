// Package discovery advertises and finds ptable preview servers over mDNS.
//
// A running `ptable serve --advertise` registers a "_ptable._tcp" service
// carrying its version in a TXT record. `ptable scan` browses for that
// service type and lists every server that answers before the timeout.
//
//	scanner := discovery.NewScanner()
//	servers, err := scanner.Scan(ctx)
//	if err != nil {
//	    return err
//	}
//	for _, s := range servers {
//	    fmt.Println(s.Name, s.URL())
//	}
package discovery
