package cli

import "context"

// ManageCustomers lists customers with add/edit/delete row actions.
func (a *App) ManageCustomers(ctx context.Context) {
	customers, err := a.api.ListCustomers(ctx)
	if err != nil {
		a.log.Error(ctx, "error fetching customers", "err", err)
		a.println("Failed to load customers.")
		return
	}

	for {
		if len(customers) == 0 {
			a.println("No customers.")
		}
		for i, c := range customers {
			a.printf("%d) %s\n", i+1, c.Name)
		}

		answer, err := GetSimpleText(a.reader, "a add, e <n> edit, d <n> delete, Enter to go back", a.out)
		if err != nil || answer == "" {
			return
		}
		if answer == "a" {
			a.AddCustomer(ctx)
			return
		}

		action, n, ok := parseRowAction(answer, len(customers))
		if !ok {
			a.println("Unknown action:", answer)
			continue
		}
		cust := customers[n-1]

		switch action {
		case "e":
			a.EditCustomer(ctx, cust.ID)
			return
		case "d":
			yes, err := Confirm(a.reader, "Are you sure you want to delete customer \""+cust.Name+"\"?", a.out)
			if err != nil || !yes {
				continue
			}
			if err := a.api.DeleteCustomer(ctx, cust.ID); err != nil {
				a.log.Error(ctx, "error deleting customer", "id", cust.ID, "err", err)
				a.println("Failed to delete customer.")
				continue
			}
			customers = removeCustomer(customers, cust.ID)
			a.println("Customer deleted successfully.")
		}
	}
}

// AddCustomer creates a customer; the name is the only (required) field.
func (a *App) AddCustomer(ctx context.Context) {
	name, err := GetSimpleText(a.reader, "Customer name", a.out)
	if err != nil {
		return
	}
	if name == "" {
		a.println("Error: please enter a customer name.")
		return
	}

	a.submit(ctx, "Customer added successfully.", "Failed to add customer.", func() error {
		return a.api.CreateCustomer(ctx, name)
	})
}

// EditCustomer pre-fills the name from the record and submits a full update.
func (a *App) EditCustomer(ctx context.Context, id string) {
	cust, err := a.api.GetCustomer(ctx, id)
	if err != nil {
		a.log.Error(ctx, "error fetching customer", "id", id, "err", err)
		a.println("Failed to load customer.")
		return
	}

	name, err := GetTextWithDefault(a.reader, "Customer name", cust.Name, a.out)
	if err != nil {
		return
	}
	if name == "" {
		a.println("Error: please enter a customer name.")
		return
	}

	a.submit(ctx, "Customer updated successfully.", "Failed to update customer.", func() error {
		return a.api.UpdateCustomer(ctx, id, name)
	})
}
