package composer

import "github.com/ijon007/cp-cli/internal/project"

var nextJSSpec = featureSpec{
	stylesheet: "app/globals.css",
	tailwindContent: []string{
		"./pages/**/*.{js,ts,jsx,tsx,mdx}",
		"./components/**/*.{js,ts,jsx,tsx,mdx}",
		"./app/**/*.{js,ts,jsx,tsx,mdx}",
	},
	rsc:            true,
	authPackage:    "@clerk/nextjs",
	publishableKey: "NEXT_PUBLIC_CLERK_PUBLISHABLE_KEY",
	gitignore:      nextJSGitignore,
}

type nextJS struct{}

func (nextJS) Framework() project.Framework { return project.NextJS }

func (nextJS) Compose(cfg project.Config) Set {
	fs := nextJSSpec
	var s Set

	m := newManifest(cfg.Name, map[string]string{
		"dev":   "next dev",
		"build": "next build",
		"start": "next start",
		"lint":  "next lint",
	})
	m.require("next", "react", "react-dom")
	m.requireFeatures(cfg, fs.authPackage)
	m.requireDev(typeScriptDeps...)
	m.requireDev("eslint", "eslint-config-next")

	s.add("package.json", "dependency manifest", m.render())
	s.add("tsconfig.json", "TypeScript config", tsconfig(project.NextJS))
	s.add("next.config.js", "Next.js config", nextConfig)
	s.add("app/layout.tsx", "root layout", substitute(nextLayout, cfg))
	s.add("app/page.tsx", "home page", substitute(nextPage, cfg))
	addStylesheet(&s, cfg, fs)
	addStyling(&s, cfg, fs)
	if cfg.Auth {
		s.add("middleware.ts", "Clerk middleware", nextMiddleware)
	}
	addDatabase(&s, cfg)
	s.add(".gitignore", "git ignore rules", fs.gitignore)
	addEnv(&s, cfg, fs)

	return s
}

const nextConfig = `/** @type {import('next').NextConfig} */
const nextConfig = {}

module.exports = nextConfig
`

const nextLayout = `import type { Metadata } from 'next'
import './globals.css'

export const metadata: Metadata = {
  title: '{{PROJECT_NAME}}',
  description: 'Generated with cp-cli',
}

export default function RootLayout({
  children,
}: {
  children: React.ReactNode
}) {
  return (
    <html lang="en">
      <body>{children}</body>
    </html>
  )
}
`

const nextPage = `export default function Home() {
  return (
    <main>
      <h1>Welcome to {{PROJECT_NAME}}</h1>
      <p>Get started by editing app/page.tsx</p>
    </main>
  )
}
`

const nextMiddleware = `import { clerkMiddleware } from '@clerk/nextjs/server'

export default clerkMiddleware()

export const config = {
  matcher: [
    '/((?!_next|[^?]*\\.(?:html?|css|js(?!on)|jpe?g|webp|png|gif|svg|ttf|woff2?|ico|csv|docx?|xlsx?|zip|webmanifest)).*)',
    '/(api|trpc)(.*)',
  ],
}
`

const nextJSGitignore = `# dependencies
/node_modules
/.pnp
.pnp.js

# testing
/coverage

# next.js
/.next/
/out/

# production
/build

# misc
.DS_Store
*.pem

# debug
npm-debug.log*
yarn-debug.log*
yarn-error.log*

# local env files
.env*.local

# vercel
.vercel

# typescript
*.tsbuildinfo
next-env.d.ts
`
