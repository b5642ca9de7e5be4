package auth

import (
	"log"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	gormadapter "github.com/casbin/gorm-adapter/v3"
	"gorm.io/gorm"
)

// InitCasbin defines the RBAC model and initializes the enforcer with GORM adapter
func InitCasbin(db *gorm.DB) (*casbin.Enforcer, error) {
	// 1. Initialize GORM adapter (creates casbin_rule table)
	adapter, err := gormadapter.NewAdapterByDB(db)
	if err != nil {
		return nil, err
	}

	// 2. Define RBAC Model in string format
	// r = request (who, what, how)
	// p = policy (who, what, how)
	// g = grouping (role hierarchy)
	// m = matcher (how to match request to policy)
	text := `
		[request_definition]
		r = sub, obj, act

		[policy_definition]
		p = sub, obj, act

		[role_definition]
		g = _, _

		[policy_effect]
		e = some(where (p.eft == allow))

		[matchers]
		m = g(r.sub, p.sub) && keyMatch2(r.obj, p.obj) && regexMatch(r.act, p.act)
	`

	m, err := model.NewModelFromString(text)
	if err != nil {
		return nil, err
	}

	// 3. Create Enforcer
	enforcer, err := casbin.NewEnforcer(m, adapter)
	if err != nil {
		return nil, err
	}

	// 4. Load policy from database
	if err := enforcer.LoadPolicy(); err != nil {
		return nil, err
	}

	// 5. Initialize default policies if empty.
	// Admin and Manager reach everything under /api; Employee is limited to
	// the note resource plus logout.
	policies, _ := enforcer.GetPolicy()
	if len(policies) == 0 {
		log.Println("Casbin: No policies found, initializing default role policies...")

		defaults := [][]string{
			{"Admin", "/api/*", "(GET)|(POST)|(PATCH)|(DELETE)"},
			{"Manager", "/api/*", "(GET)|(POST)|(PATCH)|(DELETE)"},
			{"Employee", "/api/notes", "(GET)|(POST)|(PATCH)|(DELETE)"},
			{"Employee", "/api/notes/*", "(GET)|(POST)|(PATCH)|(DELETE)"},
			{"Employee", "/api/auth/*", "POST"},
		}
		for _, p := range defaults {
			if _, err := enforcer.AddPolicy(p[0], p[1], p[2]); err != nil {
				log.Printf("Failed to add default policy %v: %v", p, err)
			}
		}
		if err := enforcer.SavePolicy(); err != nil {
			log.Printf("Failed to save default policies: %v", err)
		} else {
			log.Println("Casbin: Default role policies initialized.")
		}
	}

	log.Println("Casbin initialized successfully")
	return enforcer, nil
}
