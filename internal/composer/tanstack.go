package composer

import (
	"strings"

	"github.com/ijon007/cp-cli/internal/project"
)

var tanStackSpec = featureSpec{
	stylesheet:      "app.css",
	tailwindContent: []string{"./**/*.{js,ts,jsx,tsx,html}"},
	authPackage:     "@clerk/clerk-react",
	publishableKey:  "VITE_CLERK_PUBLISHABLE_KEY",
	gitignore:       tanStackGitignore,
}

type tanStackStart struct{}

func (tanStackStart) Framework() project.Framework { return project.TanStackStart }

func (tanStackStart) Compose(cfg project.Config) Set {
	fs := tanStackSpec
	var s Set

	m := newManifest(cfg.Name, map[string]string{
		"dev":   "vinxi dev",
		"build": "vinxi build",
		"start": "vinxi start",
	})
	m.require("@tanstack/start", "@tanstack/router", "react", "react-dom", "vinxi")
	m.requireFeatures(cfg, fs.authPackage)
	m.requireDev(typeScriptDeps...)

	s.add("package.json", "dependency manifest", m.render())
	s.add("tsconfig.json", "TypeScript config", tsconfig(project.TanStackStart))
	s.add("app.tsx", "router entry point", substitute(tanStackApp(cfg.Auth), cfg))
	addStylesheet(&s, cfg, fs)
	s.add("index.html", "HTML shell", substitute(tanStackIndex, cfg))
	s.add("app.config.ts", "TanStack Start config", tanStackAppConfig)
	addStyling(&s, cfg, fs)
	if cfg.Auth {
		s.add("app/auth.tsx", "Clerk provider", tanStackAuth)
	}
	addDatabase(&s, cfg)
	s.add(".gitignore", "git ignore rules", fs.gitignore)
	addEnv(&s, cfg, fs)

	return s
}

// tanStackApp returns app.tsx. With auth the router is mounted inside the
// Clerk provider from app/auth.tsx.
func tanStackApp(auth bool) string {
	if !auth {
		return tanStackAppBody
	}
	body := strings.Replace(tanStackAppBody,
		"import './app.css'\n",
		"import './app.css'\nimport { AuthProvider } from './app/auth'\n", 1)
	return strings.Replace(body,
		"    <App />\n",
		"    <AuthProvider>\n      <App />\n    </AuthProvider>\n", 1)
}

const tanStackAppBody = `import { createRouter, RouterProvider, Outlet } from '@tanstack/react-router'
import { createRootRoute, createRoute } from '@tanstack/react-router'
import { StrictMode } from 'react'
import { createRoot } from 'react-dom/client'
import './app.css'

const rootRoute = createRootRoute({
  component: () => {
    return (
      <>
        <Outlet />
      </>
    )
  },
})

const indexRoute = createRoute({
  getParentRoute: () => rootRoute,
  path: '/',
  component: () => {
    return (
      <div>
        <h1>Welcome to {{PROJECT_NAME}}</h1>
        <p>Get started by editing app.tsx</p>
      </div>
    )
  },
})

const routeTree = rootRoute.addChildren([indexRoute])

const router = createRouter({ routeTree })

declare module '@tanstack/react-router' {
  interface Register {
    router: typeof router
  }
}

function App() {
  return <RouterProvider router={router} />
}

const rootElement = document.getElementById('root')!
createRoot(rootElement).render(
  <StrictMode>
    <App />
  </StrictMode>,
)
`

const tanStackIndex = `<!DOCTYPE html>
<html lang="en">
  <head>
    <meta charset="UTF-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1.0" />
    <title>{{PROJECT_NAME}}</title>
  </head>
  <body>
    <div id="root"></div>
    <script type="module" src="./app.tsx"></script>
  </body>
</html>
`

const tanStackAppConfig = `import { defineConfig } from '@tanstack/start/config'
import { vitePlugin } from '@tanstack/start/vite'

export default defineConfig({
  vite: {
    plugins: [vitePlugin()],
  },
})
`

const tanStackAuth = `import { ClerkProvider } from '@clerk/clerk-react'
import type { ReactNode } from 'react'

const publishableKey = import.meta.env.VITE_CLERK_PUBLISHABLE_KEY

if (!publishableKey) {
  throw new Error('Missing VITE_CLERK_PUBLISHABLE_KEY')
}

export function AuthProvider({ children }: { children: ReactNode }) {
  return <ClerkProvider publishableKey={publishableKey}>{children}</ClerkProvider>
}
`

const tanStackGitignore = `# dependencies
/node_modules

# build
/dist
/.vinxi

# misc
.DS_Store
*.pem

# debug
npm-debug.log*
yarn-debug.log*
yarn-error.log*

# local env files
.env*.local

# typescript
*.tsbuildinfo
`
