// Package metrics defines and registers all custom Prometheus metrics for
// the employee management API. It is the single source of truth for metric
// names, labels, and help strings. HTTP request metrics are handled
// separately by the echoprometheus middleware.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "workforce"

// SignupsTotal counts successful user registrations.
// Label:
//   - role: "Employee" or "Manager"
var SignupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of users registered, by role.",
	},
	[]string{"role"},
)

// LoginsTotal counts login attempts that reached the credential check.
// Label:
//   - result: "success", "invalid_password" or "user_not_found"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// DepartmentsCreatedTotal counts newly created departments.
// Label:
//   - category: one of HR, IT, Sales, Product, Marketing
var DepartmentsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "departments_created_total",
		Help:      "Total number of departments created, by category.",
	},
	[]string{"category"},
)

// DepartmentsDeletedTotal counts deleted departments.
var DepartmentsDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "departments_deleted_total",
		Help:      "Total number of departments deleted.",
	},
)

// EmployeesLinkedTotal counts users whose department reference was set by
// the department create path's bulk link step.
var EmployeesLinkedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "employees_linked_total",
		Help:      "Total number of users linked to a department at department creation.",
	},
)
